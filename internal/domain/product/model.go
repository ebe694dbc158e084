// Package product defines the bag product record and its catalog
// allow-lists.
package product

import "github.com/bagworks/backend/internal/validate"

// Catalog allow-lists. Categorical payload fields must match one of these
// exactly; violation messages enumerate the set in sorted order.
var (
	Types         = []string{"Shopping Bag", "Carry Bag", "Grocery Bag", "Rice Bag", "Courier Bag", "Gift Bag"}
	Materials     = []string{"Non Woven", "Woven", "Paper", "Cotton", "Jute", "LDPE", "HDPE"}
	Colors        = []string{"White", "Black", "Red", "Blue", "Green", "Yellow", "Orange", "Pink", "Maroon", "Grey", "Brown", "Natural"}
	HandleTypes   = []string{"D-Cut", "U-Cut", "Loop", "Flat", "Punch"}
	PrintingTypes = []string{"Flexo", "Offset", "Screen", "Rotogravure", "None"}

	// GSMValues are the stocked sheet/border/handle weight classes.
	GSMValues = []float64{40, 50, 60, 70, 80, 90, 100, 120}
)

// Product is the API shape of a stored product. Measurement and pricing
// fields are persisted as arbitrary-precision decimals.
type Product struct {
	ProductID        int      `json:"productId"`
	ProductType      *string  `json:"productType"`
	ProductSize      *float64 `json:"productSize"`
	BagMaterial      *string  `json:"bagMaterial"`
	Quantity         *float64 `json:"quantity"`
	SheetGSM         *float64 `json:"sheetGSM"`
	SheetColor       *string  `json:"sheetColor"`
	BorderGSM        *float64 `json:"borderGSM"`
	BorderColor      *string  `json:"borderColor"`
	HandleType       *string  `json:"handleType"`
	HandleColor      *string  `json:"handleColor"`
	HandleGSM        *float64 `json:"handleGSM"`
	PrintingType     *string  `json:"printingType"`
	PrintColor       *string  `json:"printColor"`
	Color            *string  `json:"color"`
	Design           bool     `json:"design"`
	PlateBlockNumber *float64 `json:"plateBlockNumber"`
	PlateAvailable   bool     `json:"plateAvailable"`
	Rate             *float64 `json:"rate"`
}

// Payload is the create/update request body; both operations share the same
// rule table.
type Payload struct {
	ProductType      string  `json:"productType"`
	ProductSize      float64 `json:"productSize"`
	BagMaterial      string  `json:"bagMaterial"`
	Quantity         float64 `json:"quantity"`
	SheetGSM         float64 `json:"sheetGSM"`
	SheetColor       string  `json:"sheetColor"`
	BorderGSM        float64 `json:"borderGSM"`
	BorderColor      string  `json:"borderColor"`
	HandleType       string  `json:"handleType"`
	HandleColor      string  `json:"handleColor"`
	HandleGSM        float64 `json:"handleGSM"`
	PrintingType     string  `json:"printingType"`
	PrintColor       string  `json:"printColor"`
	Color            string  `json:"color"`
	Design           bool    `json:"design"`
	PlateBlockNumber float64 `json:"plateBlockNumber"`
	PlateAvailable   bool    `json:"plateAvailable"`
	Rate             float64 `json:"rate"`
}

// Validate applies the product rule table.
func (p *Payload) Validate() error {
	var errs validate.Errors
	validate.Required(&errs, "productType", &p.ProductType, validate.OneOf(Types...))
	validate.Number(&errs, "productSize", p.ProductSize, validate.Positive(10000))
	validate.Required(&errs, "bagMaterial", &p.BagMaterial, validate.OneOf(Materials...))
	validate.Number(&errs, "quantity", p.Quantity, validate.NonNegative(10000000))
	validate.Number(&errs, "sheetGSM", p.SheetGSM, validate.OneOfValues(GSMValues...))
	validate.Required(&errs, "sheetColor", &p.SheetColor, validate.OneOf(Colors...))
	validate.Number(&errs, "borderGSM", p.BorderGSM, validate.OneOfValues(GSMValues...))
	validate.Required(&errs, "borderColor", &p.BorderColor, validate.OneOf(Colors...))
	validate.Required(&errs, "handleType", &p.HandleType, validate.OneOf(HandleTypes...))
	validate.Required(&errs, "handleColor", &p.HandleColor, validate.OneOf(Colors...))
	validate.Number(&errs, "handleGSM", p.HandleGSM, validate.OneOfValues(GSMValues...))
	validate.Required(&errs, "printingType", &p.PrintingType, validate.OneOf(PrintingTypes...))
	validate.Required(&errs, "printColor", &p.PrintColor, validate.OneOf(Colors...))
	validate.Required(&errs, "color", &p.Color, validate.OneOf(Colors...))
	validate.Number(&errs, "plateBlockNumber", p.PlateBlockNumber, validate.NonNegative(1000000))
	validate.Number(&errs, "rate", p.Rate, validate.Positive(1000000), validate.Currency())
	return errs.Err()
}

// SearchFilter carries the optional conjunctive search constraints. Nil
// fields impose no constraint; MinPrice/MaxPrice bound the rate.
type SearchFilter struct {
	ProductType    *string  `json:"productType"`
	BagMaterial    *string  `json:"bagMaterial"`
	SheetColor     *string  `json:"sheetColor"`
	BorderColor    *string  `json:"borderColor"`
	HandleColor    *string  `json:"handleColor"`
	PrintingType   *string  `json:"printingType"`
	PrintColor     *string  `json:"printColor"`
	Color          *string  `json:"color"`
	Design         *bool    `json:"design"`
	PlateAvailable *bool    `json:"plateAvailable"`
	MinPrice       *float64 `json:"minPrice"`
	MaxPrice       *float64 `json:"maxPrice"`
}

// Matches reports whether the product satisfies every set constraint.
func (f SearchFilter) Matches(p Product) bool {
	if !matchString(f.ProductType, p.ProductType) ||
		!matchString(f.BagMaterial, p.BagMaterial) ||
		!matchString(f.SheetColor, p.SheetColor) ||
		!matchString(f.BorderColor, p.BorderColor) ||
		!matchString(f.HandleColor, p.HandleColor) ||
		!matchString(f.PrintingType, p.PrintingType) ||
		!matchString(f.PrintColor, p.PrintColor) ||
		!matchString(f.Color, p.Color) {
		return false
	}
	if f.Design != nil && p.Design != *f.Design {
		return false
	}
	if f.PlateAvailable != nil && p.PlateAvailable != *f.PlateAvailable {
		return false
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		if p.Rate == nil {
			return false
		}
		if f.MinPrice != nil && *p.Rate < *f.MinPrice {
			return false
		}
		if f.MaxPrice != nil && *p.Rate > *f.MaxPrice {
			return false
		}
	}
	return true
}

func matchString(want, have *string) bool {
	if want == nil {
		return true
	}
	return have != nil && *have == *want
}
