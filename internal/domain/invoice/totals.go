package invoice

import (
	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/order"
	"github.com/shopspring/decimal"
)

// TaxRate is the VAT-like charge applied to the delivered seller-price total.
// Returns are never taxed.
var TaxRate = decimal.RequireFromString("0.04")

// Totals holds the financial aggregates of an invoice, derived from the
// linked order set. This is the single aggregation formula for the whole
// system; no caller may re-derive these numbers with its own branching.
type Totals struct {
	TotalOrders          int             `json:"total_orders"`
	DeliveredOrders      int             `json:"delivered_orders"`
	ReturnOrders         int             `json:"return_orders"`
	TotalProfit          decimal.Decimal `json:"total_profit"`
	DeliveredSellerPrice decimal.Decimal `json:"delivered_seller_price"`
	Tax                  decimal.Decimal `json:"tax"`
	OtherExpenses        decimal.Decimal `json:"other_expenses"`
	NetProfit            decimal.Decimal `json:"net_profit"`
}

// ComputeTotals derives invoice totals from the order set:
//   - delivered orders contribute their frozen profit and their seller price
//   - returned orders contribute -delivery_charge (the charge-back penalty),
//     never their original profit
//   - any other status is counted but excluded from the money columns
//
// tax = TaxRate * deliveredSellerPrice; net = profit - tax - otherExpenses.
func ComputeTotals(orders []order.Order, otherExpenses decimal.Decimal) Totals {
	t := Totals{
		TotalProfit:          decimal.Zero,
		DeliveredSellerPrice: decimal.Zero,
		OtherExpenses:        otherExpenses,
	}

	for _, o := range orders {
		t.TotalOrders++
		switch order.NormalizeStatus(o.Status.String()) {
		case order.StatusDelivered:
			t.DeliveredOrders++
			t.TotalProfit = t.TotalProfit.Add(o.Profit)
			t.DeliveredSellerPrice = t.DeliveredSellerPrice.Add(o.SellerPrice)
		case order.StatusReturned:
			t.ReturnOrders++
			t.TotalProfit = t.TotalProfit.Sub(o.DeliveryCharge)
		}
	}

	t.Tax = t.DeliveredSellerPrice.Mul(TaxRate)
	t.NetProfit = t.TotalProfit.Sub(t.Tax).Sub(otherExpenses)
	return t
}
