// Command seed writes a synthetic orders JSON file for demos and manual
// report testing. The generated data is deliberately dirty in the same ways
// the live API is: prices mix raw numbers with currency-formatted strings,
// timestamps carry the " at " separator, and optional fields are dropped at
// random.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var productNames = []string{
	"Steel Water Bottle", "Cotton Kurta", "Wireless Earbuds", "Desk Lamp",
	"Masala Tea Pack", "Leather Wallet", "Running Shoes", "Ceramic Mug",
	"Yoga Mat", "Phone Stand", "Notebook Set", "Spice Box",
}

var cities = []struct {
	city, state, pincode string
}{
	{"Bengaluru", "Karnataka", "560001"},
	{"Mumbai", "Maharashtra", "400001"},
	{"Chennai", "Tamil Nadu", "600001"},
	{"Jaipur", "Rajasthan", "302001"},
	{"Kolkata", "West Bengal", "700001"},
}

func main() {
	count := flag.Int("n", 25, "Number of orders to generate")
	out := flag.String("out", "orders.json", "Output file path")
	days := flag.Int("days", 30, "Spread order dates over the past N days")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	recs := make([]map[string]any, *count)
	for i := range recs {
		recs[i] = makeOrder(rng, *days)
	}

	b, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode orders: %v", err)
	}
	if err := os.WriteFile(*out, b, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %d orders to %s (seed %d)", *count, *out, *seed)
}

func makeOrder(rng *rand.Rand, days int) map[string]any {
	when := time.Now().AddDate(0, 0, -rng.Intn(days)).
		Add(-time.Duration(rng.Intn(12)) * time.Hour)
	loc := cities[rng.Intn(len(cities))]

	products := make([]map[string]any, 1+rng.Intn(5))
	for i := range products {
		price := decimal.NewFromFloat(float64(50+rng.Intn(2000)) + 0.5*float64(rng.Intn(2)))
		// Half the prices arrive as currency-formatted strings.
		var wire any = price.InexactFloat64()
		if rng.Intn(2) == 0 {
			wire = "₹" + price.StringFixed(2)
		}
		products[i] = map[string]any{
			"product": map[string]any{
				"Name":  productNames[rng.Intn(len(productNames))],
				"Price": wire,
			},
			"quantity": 1 + rng.Intn(4),
		}
	}

	rec := map[string]any{
		"_id":  uuid.New().String(),
		"date": when.Format("January 2, 2006") + " at " + when.Format("3:04:05 PM"),
		"deliveryDetails": map[string]any{
			"name":    fmt.Sprintf("Customer %03d", rng.Intn(1000)),
			"mobile":  fmt.Sprintf("98%08d", rng.Intn(100000000)),
			"address": fmt.Sprintf("%d Main Road", 1+rng.Intn(200)),
			"city":    loc.city,
			"state":   loc.state,
			"pincode": loc.pincode,
			"type":    []string{"Home", "Work"}[rng.Intn(2)],
		},
		"products": products,
	}

	switch rng.Intn(4) {
	case 0:
		rec["cancel"] = true
	case 1:
		rec["status3"] = true
	case 2:
		rec["status2"] = true
	}

	if rng.Intn(3) == 0 {
		rec["couponDiscount"] = float64(10 + rng.Intn(90))
	}
	if rng.Intn(3) == 0 {
		rec["taxRate"] = float64(5 + 5*rng.Intn(3))
	}
	if rng.Intn(3) == 0 {
		rec["shippingFee"] = float64(20 + rng.Intn(80))
	}

	return rec
}
