package model

import (
	"encoding/json"
	"strconv"
)

// Amount is a number-like JSON value. The upstream API is inconsistent about
// money fields: the same field arrives sometimes as a raw number and sometimes
// as a string carrying a currency symbol or thousands separators. Amount keeps
// the raw text untouched; parsing happens at render time.
type Amount struct {
	Raw string
	Set bool
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		a.Raw = s
		a.Set = true
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	a.Raw = strconv.FormatFloat(f, 'f', -1, 64)
	a.Set = true
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Set {
		return []byte("null"), nil
	}
	return json.Marshal(a.Raw)
}

// ProductRef is the denormalized product snapshot embedded in an order line.
// Field names are capitalized on the wire.
type ProductRef struct {
	Name  string `json:"Name"`
	Price Amount `json:"Price"`
}

// OrderProduct is a single line item: a product reference plus quantity.
type OrderProduct struct {
	Product  *ProductRef `json:"product"`
	Quantity int         `json:"quantity"`
}

// DeliveryDetails holds the shipping fields captured at checkout.
// Every field is optional; absent data must never break report layout.
type DeliveryDetails struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Type    string `json:"type"`
}

// OrderRecord is one order as returned by the admin API's total-orders
// endpoint. Read-only to the report core.
//
// The three status flags derive a single display status in priority order
// cancel > status3 (delivered) > status2 (shipped) > pending.
type OrderRecord struct {
	ID              string           `json:"_id"`
	Date            string           `json:"date"`
	DeliveryDetails *DeliveryDetails `json:"deliveryDetails"`
	Products        []OrderProduct   `json:"products"`
	Total           Amount           `json:"total"`
	CouponDiscount  float64          `json:"couponDiscount"`
	TaxRate         float64          `json:"taxRate"`
	ShippingFee     float64          `json:"shippingFee"`
	Cancel          bool             `json:"cancel"`
	Status2         bool             `json:"status2"`
	Status3         bool             `json:"status3"`
}

// CompanyInfo is the optional branding block for the report header.
// Empty fields fall back to the built-in defaults at render time.
type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Website string
	Logo    []byte // raw PNG/JPEG bytes; nil means no logo
}
