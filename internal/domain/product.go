package domain

import "strings"

// Product represents a laptop in the catalog. Products are never mutated after load.
type Product struct {
	ID               string   `json:"id"`
	Brand            string   `json:"brand"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	Processor        string   `json:"processor"`
	RAMGB            int      `json:"ram_gb"`
	StorageGB        int      `json:"storage_gb"`
	GPU              *string  `json:"gpu,omitempty"`
	Display          *string  `json:"display,omitempty"`
	BatteryLifeHours *float64 `json:"battery_life_hours,omitempty"`
	WeightKG         *float64 `json:"weight_kg,omitempty"`
	OS               *string  `json:"os,omitempty"`
}

// HasDedicatedGPU reports whether the product lists a real GPU.
// Catalogs use the literal "None" for machines without one.
func (p Product) HasDedicatedGPU() bool {
	return p.GPU != nil && *p.GPU != "" && *p.GPU != "None"
}

// MatchesBrand compares brands case-insensitively.
func (p Product) MatchesBrand(brand string) bool {
	return strings.EqualFold(p.Brand, brand)
}

// ScoredProduct is a product copy carrying the score computed for one request
type ScoredProduct struct {
	Product
	Score float64 `json:"score"`
}
