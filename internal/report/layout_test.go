package report

import (
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
)

func testLayout(t *testing.T) *Layout {
	t.Helper()
	pdf := fpdf.New("P", "pt", "A4", "")
	l := newLayout(pdf, time.Date(2024, 12, 18, 7, 8, 20, 0, time.UTC))
	if pdf.Err() {
		t.Fatalf("layout setup: %v", pdf.Error())
	}
	return l
}

func TestEnsureSpaceNoBreakWhenFits(t *testing.T) {
	l := testLayout(t)
	l.SetCursorY(100)

	l.EnsureSpace(50)

	if l.PageNo() != 1 {
		t.Fatalf("page: got %d, want 1", l.PageNo())
	}
	if l.CursorY() != 100 {
		t.Errorf("cursor moved: got %v", l.CursorY())
	}
	if l.Footers() != 0 {
		t.Errorf("footers: got %d, want 0", l.Footers())
	}
}

func TestEnsureSpaceBreaksWhenFull(t *testing.T) {
	l := testLayout(t)
	// Park the cursor so that 100pt no longer fits above the footer reserve.
	l.SetCursorY(l.pageHeight - l.margin - footerReserve - 50)

	l.EnsureSpace(100)

	if l.PageNo() != 2 {
		t.Fatalf("page: got %d, want 2", l.PageNo())
	}
	if l.CursorY() != l.margin {
		t.Errorf("cursor after break: got %v, want top margin %v", l.CursorY(), l.margin)
	}
	if l.Footers() != 1 {
		t.Errorf("footers: got %d, want 1 (outgoing page)", l.Footers())
	}
}

func TestEnsureSpaceBoundary(t *testing.T) {
	l := testLayout(t)
	limit := l.pageHeight - l.margin - footerReserve

	// Exactly filling the remaining space does not break.
	l.SetCursorY(limit - 100)
	l.EnsureSpace(100)
	if l.PageNo() != 1 {
		t.Fatalf("exact fit broke the page")
	}

	// One point over does.
	l.EnsureSpace(101)
	if l.PageNo() != 2 {
		t.Fatalf("overflow did not break the page")
	}
}

func TestPageNumbersMonotonic(t *testing.T) {
	l := testLayout(t)

	for want := 2; want <= 5; want++ {
		l.SetCursorY(l.pageHeight) // force a break
		l.EnsureSpace(1)
		if l.PageNo() != want {
			t.Fatalf("after %d breaks: page %d, want %d", want-1, l.PageNo(), want)
		}
		if l.CursorY() != l.margin {
			t.Fatalf("cursor not reset after break: %v", l.CursorY())
		}
	}
	if l.Footers() != 4 {
		t.Errorf("footers: got %d, want 4", l.Footers())
	}
}
