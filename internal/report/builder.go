// Package report builds the super-admin order report: a paginated A4 PDF
// covering a date-filtered list of orders, one section block per order, with
// per-page footers and a self-paginating line-item table.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/kingcart/console/internal/model"
)

// ErrNoOrders is returned when the input order list is empty. This is a
// user-facing validation, not a system failure: the caller surfaces a notice
// and no document is produced.
var ErrNoOrders = errors.New("no orders to include in report")

// Builder assembles order reports. Stateless across Build calls; each call
// constructs fresh layout state and produces one document.
type Builder struct {
	company model.CompanyInfo
	now     func() time.Time
}

// NewBuilder creates a Builder with the given branding. Zero-value fields of
// company fall back to the built-in defaults.
func NewBuilder(company model.CompanyInfo) *Builder {
	return &Builder{company: company, now: time.Now}
}

// Build renders one report for the given orders, iterated strictly in input
// order (sorting is caller policy). fromDate and toDate are echoed verbatim
// in the header and the filename.
//
// Recoverable data problems (dirty numbers, bad dates, undecodable logo) are
// absorbed by the section renderers; any unexpected rendering failure aborts
// the build so a half-rendered document is never offered.
func (b *Builder) Build(orders []model.OrderRecord, fromDate, toDate string) (*Document, error) {
	if len(orders) == 0 {
		return nil, ErrNoOrders
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	l := newLayout(pdf, b.now())

	drawDocumentHeader(l, b.company, fromDate, toDate)

	for i, o := range orders {
		// Reserve a minimum block height up front so an order header never
		// starts at the very bottom of a page and breaks mid-block.
		l.EnsureSpace(orderBlockMinHeight)

		drawOrderHeaderBar(l, o, i+1)
		drawDeliveryBlock(l, o)
		drawLineItemTable(l, o.Products)

		bd := ComputeBreakdown(o)
		l.EnsureSpace(bd.BoxHeight() + 20)
		drawTotalsBox(l, bd)

		if i < len(orders)-1 {
			l.EnsureSpace(dividerAdvance)
			drawDivider(l)
		}
	}

	l.PageFooter()

	if pdf.Err() {
		return nil, fmt.Errorf("render report: %w", pdf.Error())
	}

	return &Document{
		pdf:      pdf,
		filename: fmt.Sprintf("Admin_Report_%s_to_%s.pdf", fromDate, toDate),
		footers:  l.Footers(),
	}, nil
}

// Document is a finished, in-memory report ready to be emitted once.
type Document struct {
	pdf      *fpdf.Fpdf
	filename string
	footers  int
}

// Filename is the download name embedding the requested date range.
func (d *Document) Filename() string { return d.filename }

// PageCount is the number of pages in the finished document.
func (d *Document) PageCount() int { return d.pdf.PageCount() }

// Footers is the number of page footers that were emitted during the build.
// Always equals PageCount for a completed document.
func (d *Document) Footers() int { return d.footers }

// Output writes the document to w. A document can be emitted only once.
func (d *Document) Output(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// SaveTo writes the document into dir under its Filename and returns the
// full path.
func (d *Document) SaveTo(dir string) (string, error) {
	path := filepath.Join(dir, d.filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	if err := d.pdf.Output(f); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}
	return path, nil
}
