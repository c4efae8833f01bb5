package report

import (
	"testing"

	"github.com/kingcart/console/internal/model"
	"github.com/shopspring/decimal"
)

func amount(raw string) model.Amount {
	return model.Amount{Raw: raw, Set: true}
}

func twoItemOrder() model.OrderRecord {
	return model.OrderRecord{
		ID: "order-1",
		Products: []model.OrderProduct{
			{Product: &model.ProductRef{Name: "A", Price: amount("100")}, Quantity: 2},
			{Product: &model.ProductRef{Name: "B", Price: amount("₹50.00")}, Quantity: 1},
		},
	}
}

func wantDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	w, _ := decimal.NewFromString(want)
	if !got.Equal(w) {
		t.Errorf("%s: got %s, want %s", name, got, want)
	}
}

func TestComputeBreakdownSubtotal(t *testing.T) {
	b := ComputeBreakdown(twoItemOrder())

	wantDecimal(t, "subtotal", b.Subtotal, "250")
	wantDecimal(t, "grand total", b.GrandTotal, "250")
	if n := b.extraLines(); n != 0 {
		t.Errorf("extra lines: got %d, want 0", n)
	}
	if h := b.BoxHeight(); h != 2*totalsLineH+totalsPadding {
		t.Errorf("box height: got %v", h)
	}
}

// Adjustments are displayed but not netted into the fallback grand total.
// This reproduces upstream behavior on purpose; see the package design notes.
func TestComputeBreakdownAdjustmentsNotNetted(t *testing.T) {
	o := twoItemOrder()
	o.CouponDiscount = 20
	o.TaxRate = 10
	o.ShippingFee = 30

	b := ComputeBreakdown(o)

	wantDecimal(t, "subtotal", b.Subtotal, "250")
	wantDecimal(t, "coupon", b.CouponDiscount, "20")
	wantDecimal(t, "tax", b.TaxAmount, "23") // (250 - 20) * 10%
	wantDecimal(t, "shipping", b.ShippingFee, "30")
	wantDecimal(t, "grand total", b.GrandTotal, "250")

	if n := b.extraLines(); n != 3 {
		t.Errorf("extra lines: got %d, want 3", n)
	}
	if h := b.BoxHeight(); h != 5*totalsLineH+totalsPadding {
		t.Errorf("box height: got %v", h)
	}
}

func TestComputeBreakdownExplicitTotal(t *testing.T) {
	o := twoItemOrder()
	o.Total = amount("300")

	b := ComputeBreakdown(o)
	wantDecimal(t, "grand total", b.GrandTotal, "300")
}

func TestComputeBreakdownDirtyData(t *testing.T) {
	o := model.OrderRecord{
		Products: []model.OrderProduct{
			{Product: &model.ProductRef{Name: "ok", Price: amount("₹1,000")}, Quantity: 1},
			{Product: &model.ProductRef{Name: "bad price", Price: amount("abc")}, Quantity: 3},
			{Product: nil, Quantity: 2}, // missing product reference
		},
	}

	b := ComputeBreakdown(o)
	wantDecimal(t, "subtotal", b.Subtotal, "1000")
	wantDecimal(t, "grand total", b.GrandTotal, "1000")
}

func TestComputeBreakdownEmptyOrder(t *testing.T) {
	b := ComputeBreakdown(model.OrderRecord{})
	if !b.Subtotal.IsZero() || !b.GrandTotal.IsZero() {
		t.Errorf("empty order: got subtotal %s, grand total %s", b.Subtotal, b.GrandTotal)
	}
}
