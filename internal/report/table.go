package report

import (
	"strconv"

	"github.com/kingcart/console/internal/model"
)

// Line-item table geometry.
const (
	tableHeaderRowH = 22.0
	tableRowH       = 21.0
	tableCellPad    = 6.0
)

type tableColumn struct {
	title string
	width float64
	align string // "L", "C" or "R"
}

var lineItemColumns = []tableColumn{
	{"#", 30, "C"},
	{"Product", 200, "L"},
	{"Qty", 40, "C"},
	{"Unit Price", 100, "R"},
	{"Total", 100, "R"},
}

// drawLineItemTable renders the products table for one order. The table
// handles its own page breaks: when the next row would not fit, the current
// page is footered and closed, and the header row repeats on the new page.
// The layout cursor is left just under the last row, so the caller continues
// from wherever the table actually ended.
func drawLineItemTable(l *Layout, products []model.OrderProduct) {
	left := l.margin + 15

	l.EnsureSpace(tableHeaderRowH + tableRowH)
	drawTableHeader(l, left)

	for i, p := range products {
		if l.cursorY+tableRowH > l.pageHeight-l.margin-footerReserve {
			l.breakPage()
			drawTableHeader(l, left)
		}
		drawTableRow(l, left, i, p)
	}

	l.Advance(20)
}

func drawTableHeader(l *Layout, left float64) {
	l.setFillColor(colorPrimary)
	l.setTextColor(colorWhite)
	l.pdf.SetFont("Helvetica", "B", 10)

	x := left
	for _, col := range lineItemColumns {
		l.pdf.Rect(x, l.cursorY, col.width, tableHeaderRowH, "F")
		drawCellText(l, x, col.width, tableHeaderRowH, col.align, col.title)
		x += col.width
	}
	l.Advance(tableHeaderRowH)
}

func drawTableRow(l *Layout, left float64, idx int, p model.OrderProduct) {
	if idx%2 == 1 {
		l.setFillColor(colorStripe)
		x := left
		for _, col := range lineItemColumns {
			l.pdf.Rect(x, l.cursorY, col.width, tableRowH, "F")
			x += col.width
		}
	}

	name := "N/A"
	price := 0.0
	if p.Product != nil {
		if p.Product.Name != "" {
			name = p.Product.Name
		}
		price = ParseNumber(p.Product.Price)
	}

	cells := []string{
		strconv.Itoa(idx + 1),
		name,
		strconv.Itoa(p.Quantity),
		FormatCurrency(price),
		FormatCurrency(price * float64(p.Quantity)),
	}

	l.setTextColor(colorText)
	l.pdf.SetFont("Helvetica", "", 9)
	x := left
	for i, col := range lineItemColumns {
		drawCellText(l, x, col.width, tableRowH, col.align, fitCell(l, cells[i], col.width))
		x += col.width
	}
	l.Advance(tableRowH)
}

// drawCellText places text inside a cell box according to its alignment,
// with the standard cell padding and a vertically centered baseline.
func drawCellText(l *Layout, x, width, height float64, align, s string) {
	baseline := l.cursorY + height/2 + 3
	switch align {
	case "C":
		l.textCenter(x+width/2, baseline, s)
	case "R":
		l.textRight(x+width-tableCellPad, baseline, s)
	default:
		l.text(x+tableCellPad, baseline, s)
	}
}

// fitCell truncates a value that would overflow its column.
func fitCell(l *Layout, s string, width float64) string {
	limit := width - 2*tableCellPad
	if l.pdf.GetStringWidth(l.tr(s)) <= limit {
		return s
	}
	r := []rune(s)
	for len(r) > 1 && l.pdf.GetStringWidth(l.tr(string(r)+"...")) > limit {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
