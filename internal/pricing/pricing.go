// Package pricing computes line and document totals for sales and quotes.
package pricing

import (
	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/shopspring/decimal"
)

// TaxRate is the fixed IGV rate applied to every subtotal.
var TaxRate = decimal.RequireFromString("0.18")

var hundred = decimal.NewFromInt(100)

type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// LineSubtotal is unitPrice × (1 − discountPct/100) × quantity, rounded to cents.
func LineSubtotal(unitPrice, discountPct, quantity decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(discountPct.Div(hundred))
	return unitPrice.Mul(factor).Mul(quantity).Round(2)
}

// Compute fills each item's Subtotal and returns the document totals. The
// document discount is an amount and cannot exceed subtotal plus tax.
func Compute(items model.SaleItems, discount decimal.Decimal) (Totals, error) {
	subtotal := decimal.Zero
	for i := range items {
		items[i].Subtotal = LineSubtotal(items[i].UnitPrice, items[i].Discount, items[i].Quantity)
		subtotal = subtotal.Add(items[i].Subtotal)
	}

	tax := subtotal.Mul(TaxRate).Round(2)
	gross := subtotal.Add(tax)
	if discount.IsNegative() || discount.GreaterThan(gross) {
		return Totals{}, apperror.NewValidationError("discount", "lte_total")
	}

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    gross.Sub(discount),
	}, nil
}
