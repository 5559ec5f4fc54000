// Package pdfexport renders invoices as PDF documents. It is the only
// place the PDF library is touched; the rest of the system hands it a
// stored invoice and gets bytes back.
package pdfexport

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/bahikhata/bahikhata.go/db/models"
	"github.com/jung-kurt/gofpdf"
)

const dateLayout = "02 Jan 2006"

// Render produces an A4 invoice report: header fields, one row per line
// item, and the subtotal/discount/total block.
func Render(invoice *models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, fmt.Sprintf("Invoice #%d", invoice.InvoiceNumber))
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	writeHeaderField(pdf, "Customer", invoice.CustomerName)
	writeHeaderField(pdf, "Date", invoice.CreatedAt.Format(dateLayout))
	if !invoice.DueDate.IsZero() {
		writeHeaderField(pdf, "Due date", invoice.DueDate.Time.Format(dateLayout))
	}
	writeHeaderField(pdf, "Status", invoice.Status)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(80, 8, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Unit price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range invoice.Items {
		pdf.CellFormat(80, 8, item.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, strconv.FormatInt(item.Quantity, 10), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, item.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, item.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	writeTotalRow(pdf, "Subtotal", invoice.Subtotal.StringFixed(2))
	writeTotalRow(pdf, "Discount", invoice.Discount.StringFixed(2))
	pdf.SetFont("Arial", "B", 11)
	writeTotalRow(pdf, "Total", invoice.Total.StringFixed(2))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeaderField(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(35, 7, label)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, value)
	pdf.Ln(7)
}

func writeTotalRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(145, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, value, "", 1, "R", false, 0, "")
}
