package common

const (
	// Money received from a party.
	TransactionTypeGot = "got"
	// Money paid out to a party.
	TransactionTypeGave = "gave"
	// Transaction created alongside an explicitly drafted invoice.
	TransactionTypeCustomer = "customer"

	CustomerStatusReceivable = "receivable"
	CustomerStatusPayable    = "payable"

	SupplierStatusActive   = "active"
	SupplierStatusInactive = "inactive"

	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"

	PaymentMethodCash = "Cash"

	// Invoice numbers are allocated above this floor, so the first
	// invoice in an empty ledger gets number 1001.
	InvoiceNumberFloor = 1000
)
