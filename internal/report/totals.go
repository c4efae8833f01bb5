package report

import (
	"fmt"

	"github.com/kingcart/console/internal/model"
	"github.com/shopspring/decimal"
)

// Totals box geometry.
const (
	totalsBoxWidth = 260.0
	totalsLineH    = 15.0
	totalsPadding  = 20.0
)

// Breakdown is the per-order totals summary. Recomputed for every order,
// never stored.
//
// GrandTotal preserves upstream behavior verbatim: it is the order's
// pre-computed total when one is present, otherwise the bare subtotal. The
// conditional adjustment lines are displayed but NOT netted into the fallback
// total. Flagged as a possible upstream inconsistency; do not "fix" here.
type Breakdown struct {
	Subtotal       decimal.Decimal
	CouponDiscount decimal.Decimal // zero when absent
	TaxRate        float64         // percentage; zero when absent
	TaxAmount      decimal.Decimal
	ShippingFee    decimal.Decimal // zero when absent
	GrandTotal     decimal.Decimal
}

// ComputeBreakdown derives the totals for one order.
// Subtotal sums ParseNumber(price) * quantity over the line items; tax is
// (subtotal - discount) * rate/100 and applies only when a rate is present.
func ComputeBreakdown(o model.OrderRecord) Breakdown {
	subtotal := decimal.Zero
	for _, p := range o.Products {
		if p.Product == nil {
			continue
		}
		price := decimal.NewFromFloat(ParseNumber(p.Product.Price))
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}

	b := Breakdown{Subtotal: subtotal, TaxRate: o.TaxRate}
	if o.CouponDiscount != 0 {
		b.CouponDiscount = decimal.NewFromFloat(o.CouponDiscount)
	}
	if o.TaxRate != 0 {
		b.TaxAmount = subtotal.Sub(b.CouponDiscount).
			Mul(decimal.NewFromFloat(o.TaxRate)).
			Div(decimal.NewFromInt(100))
	}
	if o.ShippingFee != 0 {
		b.ShippingFee = decimal.NewFromFloat(o.ShippingFee)
	}

	if t := ParseNumber(o.Total); t != 0 {
		b.GrandTotal = decimal.NewFromFloat(t)
	} else {
		b.GrandTotal = subtotal
	}
	return b
}

// extraLines is the number of conditional breakdown lines present.
func (b Breakdown) extraLines() int {
	n := 0
	if !b.CouponDiscount.IsZero() {
		n++
	}
	if b.TaxRate != 0 {
		n++
	}
	if !b.ShippingFee.IsZero() {
		n++
	}
	return n
}

// BoxHeight is the totals box height, sized before drawing so the background
// rectangle can be painted up front.
func (b Breakdown) BoxHeight() float64 {
	return float64(2+b.extraLines())*totalsLineH + totalsPadding
}

// drawTotalsBox renders the right-aligned totals summary and advances the
// cursor past it.
func drawTotalsBox(l *Layout, b Breakdown) {
	boxX := l.pageWidth - l.margin - 15 - totalsBoxWidth
	startY := l.cursorY
	height := b.BoxHeight()

	l.setFillColor(colorSecondary)
	l.pdf.Rect(boxX-10, startY, totalsBoxWidth+20, height, "F")

	l.pdf.SetFont("Helvetica", "", 9)
	l.setTextColor(colorText)

	y := startY + totalsLineH
	l.text(boxX, y, "Subtotal:")
	l.textRight(boxX+totalsBoxWidth, y, FormatCurrency(b.Subtotal))
	y += totalsLineH

	if !b.CouponDiscount.IsZero() {
		l.setTextColor(colorSuccess)
		l.text(boxX, y, "Coupon Discount:")
		l.textRight(boxX+totalsBoxWidth, y, "- "+FormatCurrency(b.CouponDiscount))
		y += totalsLineH
		l.setTextColor(colorText)
	}
	if b.TaxRate != 0 {
		l.text(boxX, y, fmt.Sprintf("Tax (%s%%):", SafeText(b.TaxRate)))
		l.textRight(boxX+totalsBoxWidth, y, FormatCurrency(b.TaxAmount))
		y += totalsLineH
	}
	if !b.ShippingFee.IsZero() {
		l.text(boxX, y, "Shipping:")
		l.textRight(boxX+totalsBoxWidth, y, FormatCurrency(b.ShippingFee))
		y += totalsLineH
	}

	l.pdf.SetFont("Helvetica", "B", 11)
	l.setTextColor(colorAccent)
	l.text(boxX, y+5, "Total:")
	l.textRight(boxX+totalsBoxWidth, y+5, FormatCurrency(b.GrandTotal))

	l.SetCursorY(startY + height + 20)
}
