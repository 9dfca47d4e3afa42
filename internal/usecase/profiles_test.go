package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/laptopfinder/backend/internal/domain"
)

func TestProfilesCoverEveryCategory(t *testing.T) {
	profiles := Profiles()
	assert.Len(t, profiles, len(domain.UseCategories))

	for i, category := range domain.UseCategories {
		assert.Equal(t, category, profiles[i].Category)
		assert.NotEmpty(t, profiles[i].ProcessorKeywords, category)
		assert.NotEmpty(t, profiles[i].Importance, category)
	}
}

func TestProfileFor(t *testing.T) {
	gaming := ProfileFor(domain.UseGaming)
	assert.True(t, gaming.GPURequired)
	assert.Equal(t, 16, gaming.MinRAMGB)
	assert.Equal(t, 512, gaming.MinStorageGB)

	business := ProfileFor(domain.UseBusiness)
	assert.False(t, business.GPURequired)
	if assert.NotNil(t, business.MinBatteryLifeHours) {
		assert.Equal(t, 8.0, *business.MinBatteryLifeHours)
	}

	assert.Equal(t, ProfileFor(domain.UseGeneral), ProfileFor("unknown"))
}

func TestRequirementProfile_Weight(t *testing.T) {
	general := ProfileFor(domain.UseGeneral)

	testCases := []struct {
		feature Feature
		want    float64
	}{
		{FeaturePrice, 0.4},
		{FeatureBatteryLife, 0.3},
		{FeatureStorage, 0.1},
		{FeatureWeight, 0.1},
		{FeatureGPU, 0},
		{FeatureDisplay, 0},
	}

	for _, tc := range testCases {
		t.Run(string(tc.feature), func(t *testing.T) {
			assert.Equal(t, tc.want, general.Weight(tc.feature))
		})
	}

	assert.Equal(t, 0.1, ProfileFor(domain.UseGaming).Weight(FeatureDisplay))
}

func TestRequirementProfile_MinimumFallbacks(t *testing.T) {
	var empty RequirementProfile
	assert.Equal(t, fallbackMinRAMGB, empty.minRAM())
	assert.Equal(t, fallbackMinStorageGB, empty.minStorage())

	student := ProfileFor(domain.UseStudent)
	assert.Equal(t, 8, student.minRAM())
	assert.Equal(t, 256, student.minStorage())
}
