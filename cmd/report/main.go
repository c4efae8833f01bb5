package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/kingcart/console/internal/config"
	"github.com/kingcart/console/internal/model"
	"github.com/kingcart/console/internal/orders"
	"github.com/kingcart/console/internal/report"
)

func main() {
	// CLI flags
	fromDate := flag.String("from", "", "Start of the date range (YYYY-MM-DD)")
	toDate := flag.String("to", "", "End of the date range (YYYY-MM-DD)")
	input := flag.String("input", "", "Read orders from a JSON file instead of the admin API")
	outDir := flag.String("out", "", "Output directory (default from OUTPUT_DIR)")
	flag.Parse()

	// Fall back to environment variables
	if *fromDate == "" {
		*fromDate = os.Getenv("REPORT_FROM")
	}
	if *toDate == "" {
		*toDate = os.Getenv("REPORT_TO")
	}
	if *fromDate == "" || *toDate == "" {
		log.Fatal("Please select both from and to dates (-from / -to, YYYY-MM-DD)")
	}

	cfg := config.Load()
	if *outDir == "" {
		*outDir = cfg.Output.Dir
	}

	// Load orders: exported file if given, otherwise the admin API.
	var recs []model.OrderRecord
	var err error
	if *input != "" {
		recs, err = orders.ReadFile(*input)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		client := orders.NewClient(cfg.API.BaseURL, cfg.API.Cookie)
		recs, err = client.FetchTotalOrders(ctx)
	}
	if err != nil {
		log.Fatalf("Failed to load orders: %v", err)
	}
	log.Printf("Loaded %d orders", len(recs))

	// Caller policy: latest first, then the inclusive date-range filter.
	orders.SortByDateDesc(recs)
	filtered, err := orders.FilterByRange(recs, *fromDate, *toDate)
	if err != nil {
		log.Fatalf("Invalid date range: %v", err)
	}

	builder := report.NewBuilder(companyInfo(cfg))
	doc, err := builder.Build(filtered, *fromDate, *toDate)
	if errors.Is(err, report.ErrNoOrders) {
		log.Fatalf("No orders to include in report for %s to %s", *fromDate, *toDate)
	}
	if err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}

	path, err := doc.SaveTo(*outDir)
	if err != nil {
		log.Fatalf("Failed to save report: %v", err)
	}
	log.Printf("Report written to %s (%d pages, %d orders)", path, doc.PageCount(), len(filtered))
}

// companyInfo assembles the branding block from configuration, loading the
// logo file when one is configured. A missing or unreadable logo file just
// means no logo; the report falls back to text-only branding.
func companyInfo(cfg *config.Config) model.CompanyInfo {
	info := model.CompanyInfo{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
		Email:   cfg.Company.Email,
		Website: cfg.Company.Website,
	}
	if cfg.Company.LogoPath != "" {
		b, err := os.ReadFile(cfg.Company.LogoPath)
		if err != nil {
			log.Printf("Warning: could not read logo %s: %v", cfg.Company.LogoPath, err)
		} else {
			info.Logo = b
		}
	}
	return info
}
