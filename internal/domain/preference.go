package domain

import "fmt"

// UseCategory is the declared primary purpose for a laptop
type UseCategory string

const (
	UseGaming      UseCategory = "gaming"
	UseBusiness    UseCategory = "business"
	UseStudent     UseCategory = "student"
	UseCreative    UseCategory = "creative"
	UseProgramming UseCategory = "programming"
	UseGeneral     UseCategory = "general"
)

// UseCategories lists every category in declaration order.
var UseCategories = []UseCategory{
	UseGaming,
	UseBusiness,
	UseStudent,
	UseCreative,
	UseProgramming,
	UseGeneral,
}

// ParseUseCategory converts a string into a known UseCategory
func ParseUseCategory(s string) (UseCategory, error) {
	for _, c := range UseCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown use category %q", ErrInvalidRequest, s)
}

// Preferences holds shopper preferences. A nil field means "not stated".
// The same type carries the partial record produced by one extraction and
// the accumulated record owned by a conversation.
type Preferences struct {
	Budget          *float64     `json:"budget,omitempty"`
	UseCategory     *UseCategory `json:"use_category,omitempty"`
	BrandPreference *string      `json:"brand_preference,omitempty"`
	MinRAMGB        *int         `json:"min_ram,omitempty"`
	MinStorageGB    *int         `json:"min_storage,omitempty"`
	PreferGPU       *bool        `json:"prefer_gpu,omitempty"`
}

// Merge copies every field set in update into p. Fields absent from update
// keep their previous value; a set field is never cleared.
func (p *Preferences) Merge(update Preferences) {
	if update.Budget != nil {
		v := *update.Budget
		p.Budget = &v
	}
	if update.UseCategory != nil {
		v := *update.UseCategory
		p.UseCategory = &v
	}
	if update.BrandPreference != nil {
		v := *update.BrandPreference
		p.BrandPreference = &v
	}
	if update.MinRAMGB != nil {
		v := *update.MinRAMGB
		p.MinRAMGB = &v
	}
	if update.MinStorageGB != nil {
		v := *update.MinStorageGB
		p.MinStorageGB = &v
	}
	if update.PreferGPU != nil {
		v := *update.PreferGPU
		p.PreferGPU = &v
	}
}

// WantsGPU returns the GPU preference, defaulting to false
func (p Preferences) WantsGPU() bool {
	return p.PreferGPU != nil && *p.PreferGPU
}

// IsEmpty reports whether no field is set.
func (p Preferences) IsEmpty() bool {
	return p.Budget == nil && p.UseCategory == nil && p.BrandPreference == nil &&
		p.MinRAMGB == nil && p.MinStorageGB == nil && p.PreferGPU == nil
}

// SetFields returns the JSON names of the fields that are set.
func (p Preferences) SetFields() []string {
	var fields []string
	if p.Budget != nil {
		fields = append(fields, "budget")
	}
	if p.UseCategory != nil {
		fields = append(fields, "use_category")
	}
	if p.BrandPreference != nil {
		fields = append(fields, "brand_preference")
	}
	if p.MinRAMGB != nil {
		fields = append(fields, "min_ram")
	}
	if p.MinStorageGB != nil {
		fields = append(fields, "min_storage")
	}
	if p.PreferGPU != nil {
		fields = append(fields, "prefer_gpu")
	}
	return fields
}

// RecommendRequest is the input of the recommendation engine.
// Budget must be positive; boundary validation happens before the engine.
type RecommendRequest struct {
	Budget          float64
	UseCategory     UseCategory
	BrandPreference string
	MinRAMGB        *int
	MinStorageGB    *int
	PreferGPU       bool
	Limit           int
}

// Recommendation is the ranked output of one engine call
type Recommendation struct {
	Items []ScoredProduct `json:"recommendations"`
	// Relaxed is true when the strict filter matched nothing and the
	// loosened filter produced the candidates.
	Relaxed bool `json:"relaxed"`
}
