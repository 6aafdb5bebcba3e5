package booking

import (
	"gocab/internal/modules/catalog"
	"gocab/internal/types"
)

const partPayShare = 0.25

// PayNow is the amount charged at booking time for mode.
func PayNow(grandTotal int64, mode PaymentMode) int64 {
	switch mode {
	case PayBookAtZero:
		return 0
	case PayFull:
		return grandTotal
	default:
		return types.RoundRupees(float64(grandTotal) * partPayShare)
	}
}

// ComputeTotals adds the add-ons to base, takes off discount and never goes
// below zero. Add-ons priced per km contribute nothing here.
func ComputeTotals(base int64, addons []catalog.Addon, discount int64, mode PaymentMode) Totals {
	var addonsTotal int64
	for _, a := range addons {
		addonsTotal += a.PriceValue
	}
	grand := max(0, base+addonsTotal-discount)
	return Totals{
		BasePrice:   base,
		AddonsTotal: addonsTotal,
		Discount:    discount,
		GrandTotal:  grand,
		PayNow:      PayNow(grand, mode),
		PaymentMode: mode,
	}
}

// PaymentOptions previews all three modes through PayNow.
func PaymentOptions(grandTotal int64) []PaymentOption {
	return []PaymentOption{
		{Mode: PayBookAtZero, PayNow: PayNow(grandTotal, PayBookAtZero), Label: "Book at ₹0"},
		{Mode: PayPart, PayNow: PayNow(grandTotal, PayPart), Label: "Pay " + types.FormatINR(PayNow(grandTotal, PayPart)) + " now"},
		{Mode: PayFull, PayNow: PayNow(grandTotal, PayFull), Label: "Pay full " + types.FormatINR(grandTotal)},
	}
}
