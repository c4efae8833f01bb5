package report

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// RGB is a display color.
type RGB struct {
	R, G, B int
}

// Palette used across the report.
var (
	colorPrimary   = RGB{52, 73, 94}
	colorSecondary = RGB{236, 240, 241}
	colorAccent    = RGB{41, 128, 185}
	colorText      = RGB{44, 62, 80}
	colorLightText = RGB{149, 165, 166}
	colorSuccess   = RGB{39, 174, 96}
	colorWarning   = RGB{230, 126, 34}
	colorDanger    = RGB{231, 76, 60}
	colorStripe    = RGB{248, 249, 250}
	colorWhite     = RGB{255, 255, 255}
)

// Page geometry, in points on A4.
const (
	pageMargin    = 40.0
	footerReserve = 60.0 // space kept clear for the page footer
	footerRise    = 30.0 // footer baseline above the page bottom
)

// Layout owns the vertical write cursor and the page-break decision for one
// document build. Every section renderer that consumes vertical space goes
// through it, so "what was drawn" and "where to draw next" stay coupled in
// one place instead of in closures.
type Layout struct {
	pdf        *fpdf.Fpdf
	tr         func(string) string
	cursorY    float64
	pageWidth  float64
	pageHeight float64
	margin     float64
	generated  time.Time
	footers    int
}

func newLayout(pdf *fpdf.Fpdf, generated time.Time) *Layout {
	w, h := pdf.GetPageSize()
	l := &Layout{
		pdf:        pdf,
		tr:         pdf.UnicodeTranslatorFromDescriptor(""),
		pageWidth:  w,
		pageHeight: h,
		margin:     pageMargin,
		generated:  generated,
	}
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	l.cursorY = l.margin
	return l
}

// CursorY is the current vertical write position on the active page.
func (l *Layout) CursorY() float64 { return l.cursorY }

// SetCursorY moves the cursor to an absolute position on the current page.
func (l *Layout) SetCursorY(y float64) { l.cursorY = y }

// Advance moves the cursor down by dy.
func (l *Layout) Advance(dy float64) { l.cursorY += dy }

// PageNo is the 1-based number of the page currently being written.
func (l *Layout) PageNo() int { return l.pdf.PageNo() }

// Footers is the number of page footers emitted so far.
func (l *Layout) Footers() int { return l.footers }

// EnsureSpace breaks the page when fewer than needed points remain above the
// footer reserve: the outgoing page gets its footer, a fresh page starts and
// the cursor resets to the top margin.
func (l *Layout) EnsureSpace(needed float64) {
	if l.cursorY+needed > l.pageHeight-l.margin-footerReserve {
		l.breakPage()
	}
}

func (l *Layout) breakPage() {
	l.PageFooter()
	l.pdf.AddPage()
	l.cursorY = l.margin
}

// PageFooter draws the footer on the current page: a separator rule, the
// generation timestamp on the left and the page number on the right. Called
// exactly once per page, when the page is abandoned, and once more at the
// very end of the document.
func (l *Layout) PageFooter() {
	footerY := l.pageHeight - footerRise
	l.setDrawColor(colorSecondary)
	l.pdf.SetLineWidth(0.5)
	l.pdf.Line(l.margin, footerY-10, l.pageWidth-l.margin, footerY-10)
	l.pdf.SetFont("Helvetica", "", 8)
	l.setTextColor(colorLightText)
	l.text(l.margin, footerY, "Generated on "+l.generated.Format("2/1/2006, 3:04:05 pm"))
	l.textRight(l.pageWidth-l.margin, footerY, fmt.Sprintf("Page %d", l.pdf.PageNo()))
	l.footers++
}

// --- Drawing helpers ---

func (l *Layout) text(x, y float64, s string) {
	l.pdf.Text(x, y, l.tr(s))
}

// textRight draws s with its right edge at x.
func (l *Layout) textRight(x, y float64, s string) {
	t := l.tr(s)
	l.pdf.Text(x-l.pdf.GetStringWidth(t), y, t)
}

// textCenter draws s centered on x.
func (l *Layout) textCenter(x, y float64, s string) {
	t := l.tr(s)
	l.pdf.Text(x-l.pdf.GetStringWidth(t)/2, y, t)
}

func (l *Layout) setTextColor(c RGB) { l.pdf.SetTextColor(c.R, c.G, c.B) }
func (l *Layout) setFillColor(c RGB) { l.pdf.SetFillColor(c.R, c.G, c.B) }
func (l *Layout) setDrawColor(c RGB) { l.pdf.SetDrawColor(c.R, c.G, c.B) }
