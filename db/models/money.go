package models

import "github.com/shopspring/decimal"

// Money values go over the wire as JSON numbers, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
