package report

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	_ "image/jpeg"

	"github.com/go-pdf/fpdf"
	"github.com/kingcart/console/internal/model"
)

// Section geometry, in points.
const (
	headerBandHeight    = 90.0
	orderBarHeight      = 25.0
	orderBlockMinHeight = 180.0 // conservative reservation before starting an order block
	dividerAdvance      = 20.0
)

// Built-in branding defaults for absent companyInfo fields.
const (
	defaultCompanyName    = "KING CART"
	defaultCompanyAddress = "123 Business St, City, State"
	defaultCompanyPhone   = "(555) 123-4567"
	defaultCompanyEmail   = "info@kingcart.com"
	defaultCompanyWebsite = "www.kingcart.com"
)

func companyWithDefaults(c model.CompanyInfo) model.CompanyInfo {
	if c.Name == "" {
		c.Name = defaultCompanyName
	}
	if c.Address == "" {
		c.Address = defaultCompanyAddress
	}
	if c.Phone == "" {
		c.Phone = defaultCompanyPhone
	}
	if c.Email == "" {
		c.Email = defaultCompanyEmail
	}
	if c.Website == "" {
		c.Website = defaultCompanyWebsite
	}
	return c
}

// drawDocumentHeader paints the fixed-height branding band and the report
// title with the requested date range echoed verbatim. Rendered once, on the
// first page only.
func drawDocumentHeader(l *Layout, company model.CompanyInfo, fromDate, toDate string) {
	company = companyWithDefaults(company)

	l.setFillColor(colorPrimary)
	l.pdf.Rect(0, 0, l.pageWidth, headerBandHeight, "F")

	infoX := l.margin
	if len(company.Logo) > 0 {
		drawLogo(l, company.Logo)
		infoX = l.margin + 65
	}

	l.setTextColor(colorWhite)
	l.pdf.SetFont("Helvetica", "B", 20)
	l.text(infoX, 40, company.Name)
	l.pdf.SetFont("Helvetica", "", 10)
	l.text(infoX, 58, company.Address)
	l.text(infoX, 72, company.Phone+" | "+company.Email)
	l.text(infoX, 85, company.Website)

	l.pdf.SetFont("Helvetica", "B", 20)
	l.textRight(l.pageWidth-l.margin, 45, "SUPER ADMIN ORDER REPORT")
	l.pdf.SetFont("Helvetica", "", 11)
	l.textRight(l.pageWidth-l.margin, 65, fmt.Sprintf("Period: %s to %s", fromDate, toDate))

	l.SetCursorY(120)
	drawDivider(l)
}

// drawLogo places the company logo in the header band. A logo that cannot be
// decoded is replaced by a labeled placeholder box; it never fails the report.
// The bytes are decoded and re-encoded as baseline PNG first, because a bad
// or exotic image handed straight to fpdf would poison the whole document
// with a sticky error.
func drawLogo(l *Layout, logo []byte) {
	img, _, err := image.Decode(bytes.NewReader(logo))
	var buf bytes.Buffer
	if err == nil {
		err = png.Encode(&buf, img)
	}
	if err != nil {
		l.setFillColor(colorWhite)
		l.pdf.Rect(l.margin, 20, 50, 50, "F")
		l.pdf.SetTextColor(0, 0, 0)
		l.pdf.SetFont("Helvetica", "", 8)
		l.textCenter(l.margin+25, 50, "LOGO")
		return
	}
	opts := fpdf.ImageOptions{ImageType: "png", ReadDpi: false}
	l.pdf.RegisterImageOptionsReader("company-logo", opts, &buf)
	l.pdf.ImageOptions("company-logo", l.margin, 20, 50, 50, false, opts, 0, "")
}

// drawOrderHeaderBar paints the colored band opening an order block: the
// 1-based position in the input (the caller owns any sorting), an invoice
// reference derived from the order id, and the status in its display color.
func drawOrderHeaderBar(l *Layout, o model.OrderRecord, seq int) {
	l.setFillColor(colorAccent)
	l.pdf.Rect(l.margin, l.cursorY, l.pageWidth-2*l.margin, orderBarHeight, "F")

	l.setTextColor(colorWhite)
	l.pdf.SetFont("Helvetica", "B", 12)
	l.text(l.margin+15, l.cursorY+17, fmt.Sprintf("Order #%d", seq))
	l.text(l.margin+120, l.cursorY+17, "INV-"+invoiceRef(o.ID))

	status := DeriveStatus(o)
	l.setTextColor(status.Color())
	l.textRight(l.pageWidth-l.margin-15, l.cursorY+17, status.Label())

	l.Advance(35)
}

// invoiceRef is the trailing 8 characters of the order identifier.
func invoiceRef(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}

// drawDeliveryBlock renders the two delivery-detail rows. Every field has a
// safe fallback so absent data renders as "N/A" or empty rather than breaking
// layout.
func drawDeliveryBlock(l *Layout, o model.OrderRecord) {
	d := o.DeliveryDetails
	if d == nil {
		d = &model.DeliveryDetails{}
	}

	l.setTextColor(colorText)
	l.pdf.SetFont("Helvetica", "", 10)

	x1 := l.margin + 15
	x2 := l.margin + 180
	x3 := l.margin + 360

	l.text(x1, l.cursorY, "Date: "+FormatDate(o.Date))
	l.text(x2, l.cursorY, "Customer: "+orNA(d.Name))
	l.text(x3, l.cursorY, "Phone: "+orNA(d.Mobile))
	l.Advance(20)

	l.text(x1, l.cursorY, fmt.Sprintf("Address: %s , %s, %s", d.Address, d.City, d.State))
	l.text(x1, l.cursorY+15, fmt.Sprintf("Pincode: %s | %s", d.Pincode, d.Type))
	l.Advance(50)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// drawDivider draws the horizontal rule between order blocks.
func drawDivider(l *Layout) {
	l.setDrawColor(colorSecondary)
	l.pdf.SetLineWidth(1)
	l.pdf.Line(l.margin, l.cursorY, l.pageWidth-l.margin, l.cursorY)
	l.Advance(dividerAdvance)
}
