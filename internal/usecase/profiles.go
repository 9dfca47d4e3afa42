package usecase

import "github.com/laptopfinder/backend/internal/domain"

// Feature names used as keys of a profile's importance weights
type Feature string

const (
	FeaturePrice       Feature = "price"
	FeatureRAM         Feature = "ram"
	FeatureStorage     Feature = "storage"
	FeatureProcessor   Feature = "processor"
	FeatureGPU         Feature = "gpu"
	FeatureBatteryLife Feature = "battery_life"
	FeatureWeight      Feature = "weight"
	FeatureDisplay     Feature = "display"
)

// Fallback weights for features a profile does not list.
// GPU falls back to zero so it only counts where a profile asks for it.
var defaultFeatureWeights = map[Feature]float64{
	FeaturePrice:       0.25,
	FeatureRAM:         0.15,
	FeatureStorage:     0.1,
	FeatureProcessor:   0.2,
	FeatureGPU:         0,
	FeatureBatteryLife: 0.1,
	FeatureWeight:      0.1,
}

// Thresholds used when a profile leaves a minimum unset
const (
	fallbackMinRAMGB     = 4
	fallbackMinStorageGB = 128
)

// RequirementProfile holds the hardware thresholds and scoring weights for one use category
type RequirementProfile struct {
	Category            domain.UseCategory  `json:"use_category"`
	MinRAMGB            int                 `json:"min_ram"`
	MinStorageGB        int                 `json:"min_storage"`
	MinBatteryLifeHours *float64            `json:"min_battery_life,omitempty"`
	GPURequired         bool                `json:"gpu_required"`
	ProcessorKeywords   []string            `json:"processor_keywords"`
	Importance          map[Feature]float64 `json:"importance"`
}

// Weight returns the importance of a feature, falling back to the default table.
// Display has no sub-score; its weight is informational.
func (p RequirementProfile) Weight(f Feature) float64 {
	if w, ok := p.Importance[f]; ok {
		return w
	}
	return defaultFeatureWeights[f]
}

func hours(h float64) *float64 { return &h }

// requirementProfiles is exhaustive over domain.UseCategories.
var requirementProfiles = map[domain.UseCategory]RequirementProfile{
	domain.UseGaming: {
		Category:          domain.UseGaming,
		MinRAMGB:          16,
		MinStorageGB:      512,
		GPURequired:       true,
		ProcessorKeywords: []string{"i7", "i9", "ryzen 7", "ryzen 9"},
		Importance: map[Feature]float64{
			FeatureGPU:       0.4,
			FeatureProcessor: 0.3,
			FeatureRAM:       0.2,
			FeatureDisplay:   0.1,
		},
	},
	domain.UseBusiness: {
		Category:            domain.UseBusiness,
		MinRAMGB:            8,
		MinStorageGB:        256,
		MinBatteryLifeHours: hours(8),
		ProcessorKeywords:   []string{"i5", "i7", "ryzen 5", "ryzen 7"},
		Importance: map[Feature]float64{
			FeatureBatteryLife: 0.4,
			FeatureWeight:      0.3,
			FeatureProcessor:   0.2,
			FeatureRAM:         0.1,
		},
	},
	domain.UseStudent: {
		Category:            domain.UseStudent,
		MinRAMGB:            8,
		MinStorageGB:        256,
		MinBatteryLifeHours: hours(6),
		ProcessorKeywords:   []string{"i3", "i5", "ryzen 3", "ryzen 5"},
		Importance: map[Feature]float64{
			FeaturePrice:       0.4,
			FeatureBatteryLife: 0.3,
			FeatureWeight:      0.2,
			FeatureStorage:     0.1,
		},
	},
	domain.UseCreative: {
		Category:          domain.UseCreative,
		MinRAMGB:          16,
		MinStorageGB:      512,
		GPURequired:       true,
		ProcessorKeywords: []string{"i7", "i9", "ryzen 7", "ryzen 9"},
		Importance: map[Feature]float64{
			FeatureDisplay:   0.4,
			FeatureGPU:       0.3,
			FeatureRAM:       0.2,
			FeatureProcessor: 0.1,
		},
	},
	domain.UseProgramming: {
		Category:          domain.UseProgramming,
		MinRAMGB:          16,
		MinStorageGB:      512,
		ProcessorKeywords: []string{"i5", "i7", "ryzen 5", "ryzen 7"},
		Importance: map[Feature]float64{
			FeatureProcessor:   0.4,
			FeatureRAM:         0.3,
			FeatureBatteryLife: 0.2,
			FeatureStorage:     0.1,
		},
	},
	domain.UseGeneral: {
		Category:          domain.UseGeneral,
		MinRAMGB:          8,
		MinStorageGB:      256,
		ProcessorKeywords: []string{"i5", "i7", "ryzen 5"},
		Importance: map[Feature]float64{
			FeaturePrice:       0.4,
			FeatureBatteryLife: 0.3,
			FeatureProcessor:   0.2,
			FeatureRAM:         0.1,
		},
	},
}

// ProfileFor returns the requirement profile of a category.
// Unknown categories get the general profile.
func ProfileFor(category domain.UseCategory) RequirementProfile {
	if profile, ok := requirementProfiles[category]; ok {
		return profile
	}
	return requirementProfiles[domain.UseGeneral]
}

// Profiles returns all profiles in category declaration order
func Profiles() []RequirementProfile {
	profiles := make([]RequirementProfile, 0, len(domain.UseCategories))
	for _, c := range domain.UseCategories {
		profiles = append(profiles, requirementProfiles[c])
	}
	return profiles
}

func (p RequirementProfile) minRAM() int {
	if p.MinRAMGB > 0 {
		return p.MinRAMGB
	}
	return fallbackMinRAMGB
}

func (p RequirementProfile) minStorage() int {
	if p.MinStorageGB > 0 {
		return p.MinStorageGB
	}
	return fallbackMinStorageGB
}
