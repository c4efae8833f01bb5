package report

import (
	"fmt"
	"testing"

	"github.com/kingcart/console/internal/model"
)

func makeProducts(n int) []model.OrderProduct {
	out := make([]model.OrderProduct, n)
	for i := range out {
		out[i] = model.OrderProduct{
			Product:  &model.ProductRef{Name: fmt.Sprintf("Item %d", i+1), Price: amount("100")},
			Quantity: 1,
		}
	}
	return out
}

func TestLineItemTableSinglePage(t *testing.T) {
	l := testLayout(t)
	l.SetCursorY(120)

	drawLineItemTable(l, makeProducts(5))

	if l.PageNo() != 1 {
		t.Fatalf("small table should stay on one page, got page %d", l.PageNo())
	}
	want := 120 + tableHeaderRowH + 5*tableRowH + 20
	if l.CursorY() != want {
		t.Errorf("final cursor: got %v, want %v", l.CursorY(), want)
	}
	if l.pdf.Err() {
		t.Fatalf("pdf error: %v", l.pdf.Error())
	}
}

func TestLineItemTableSelfPaginates(t *testing.T) {
	l := testLayout(t)
	l.SetCursorY(120)

	// Far more rows than fit on one A4 page.
	drawLineItemTable(l, makeProducts(60))

	if l.PageNo() < 2 {
		t.Fatalf("expected the table to span pages, got %d", l.PageNo())
	}
	if l.Footers() != l.PageNo()-1 {
		t.Errorf("each abandoned page gets a footer: footers %d, pages %d", l.Footers(), l.PageNo())
	}
	// The cursor continues below the last row on the final page, never above
	// the top margin plus the repeated header.
	if floor := l.margin + tableHeaderRowH; l.CursorY() < floor {
		t.Errorf("final cursor %v above repeated header bottom %v", l.CursorY(), floor)
	}
	if ceil := l.pageHeight - l.margin; l.CursorY() > ceil {
		t.Errorf("final cursor %v ran past the bottom margin", l.CursorY())
	}
	if l.pdf.Err() {
		t.Fatalf("pdf error: %v", l.pdf.Error())
	}
}

func TestLineItemTableMissingProduct(t *testing.T) {
	l := testLayout(t)
	l.SetCursorY(120)

	drawLineItemTable(l, []model.OrderProduct{{Product: nil, Quantity: 2}})

	if l.pdf.Err() {
		t.Fatalf("nil product must not fail rendering: %v", l.pdf.Error())
	}
}

func TestFitCellTruncatesLongValues(t *testing.T) {
	l := testLayout(t)
	l.pdf.SetFont("Helvetica", "", 9)

	long := "An Unreasonably Long Product Name That Cannot Possibly Fit In Its Column"
	got := fitCell(l, long, 60)
	if got == long {
		t.Fatal("expected truncation")
	}
	if w := l.pdf.GetStringWidth(l.tr(got)); w > 60-2*tableCellPad {
		t.Errorf("truncated value still too wide: %v", w)
	}

	if got := fitCell(l, "short", 200); got != "short" {
		t.Errorf("short value changed: %q", got)
	}
}
