package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laptopfinder/backend/internal/domain"
)

// sliceCatalog is a fixed in-memory catalog for engine tests
type sliceCatalog []domain.Product

func (c sliceCatalog) All() []domain.Product { return c }

func (c sliceCatalog) GetByID(id string) (domain.Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int { return &i }

func twoLaptopCatalog() sliceCatalog {
	return sliceCatalog{
		{ID: "1", Brand: "Dell", Price: 1200, RAMGB: 16, StorageGB: 512, Processor: "i7"},
		{ID: "2", Brand: "Apple", Price: 1100, RAMGB: 8, StorageGB: 256, GPU: strPtr("M2 GPU"), Processor: "M2"},
	}
}

func mixedCatalog() sliceCatalog {
	return sliceCatalog{
		{ID: "a", Brand: "Acer", Name: "Aspire", Price: 650, Processor: "Intel Core i5", RAMGB: 8, StorageGB: 512,
			BatteryLifeHours: floatPtr(9), WeightKG: floatPtr(1.7)},
		{ID: "b", Brand: "Asus", Name: "TUF", Price: 1150, Processor: "AMD Ryzen 7", RAMGB: 16, StorageGB: 1000,
			GPU: strPtr("NVIDIA RTX 4060"), BatteryLifeHours: floatPtr(6), WeightKG: floatPtr(2.3)},
		{ID: "c", Brand: "Dell", Name: "Latitude", Price: 980, Processor: "Intel Core i7", RAMGB: 16, StorageGB: 512,
			GPU: strPtr("None"), BatteryLifeHours: floatPtr(13), WeightKG: floatPtr(1.3)},
		{ID: "d", Brand: "HP", Name: "Pavilion", Price: 720, Processor: "AMD Ryzen 5", RAMGB: 8, StorageGB: 256,
			BatteryLifeHours: floatPtr(8), WeightKG: floatPtr(1.6)},
	}
}

func TestNewRecommendationEngine(t *testing.T) {
	t.Run("uses defaults for zero config", func(t *testing.T) {
		e := NewRecommendationEngine(sliceCatalog{}, EngineConfig{})
		assert.Equal(t, defaultRelaxFactor, e.relaxBudgetFactor)
		assert.Equal(t, defaultResultsLimit, e.defaultLimit)
	})

	t.Run("keeps provided config", func(t *testing.T) {
		e := NewRecommendationEngine(sliceCatalog{}, EngineConfig{RelaxBudgetFactor: 1.25, DefaultLimit: 7})
		assert.Equal(t, 1.25, e.relaxBudgetFactor)
		assert.Equal(t, 7, e.defaultLimit)
	})
}

func TestRecommend_ScoresFollowWeightedFormula(t *testing.T) {
	e := NewRecommendationEngine(twoLaptopCatalog(), EngineConfig{})

	rec := e.Recommend(domain.RecommendRequest{Budget: 1300, UseCategory: domain.UseGeneral})
	require.Len(t, rec.Items, 2)
	assert.False(t, rec.Relaxed)

	scores := map[string]float64{}
	for _, item := range rec.Items {
		scores[item.ID] = item.Score
	}

	// price 0.4, ram 0.1, storage 0.1 (fallback), processor 0.2
	wantDell := 0.4*(1-1200.0/1300) + 0.1*(16.0/32) + 0.1*(512.0/1000) + 0.2*1
	wantApple := 0.4*(1-1100.0/1300) + 0.1*(8.0/32) + 0.1*(256.0/1000)

	assert.InDelta(t, wantDell, scores["1"], 1e-9)
	assert.InDelta(t, wantApple, scores["2"], 1e-9)
	assert.InDelta(t, 0.3319692, scores["1"], 1e-6)
	assert.InDelta(t, 0.1121385, scores["2"], 1e-6)

	assert.GreaterOrEqual(t, rec.Items[0].Score, rec.Items[1].Score)
}

func TestRecommend_GamingOverBudgetReturnsEmpty(t *testing.T) {
	catalog := sliceCatalog{
		{ID: "g1", Brand: "MSI", Price: 1200, RAMGB: 16, StorageGB: 512, GPU: strPtr("RTX 4060"), Processor: "i7"},
		{ID: "g2", Brand: "Asus", Price: 900, RAMGB: 16, StorageGB: 512, GPU: strPtr("RTX 3050"), Processor: "Ryzen 7"},
		{ID: "o1", Brand: "Acer", Price: 450, RAMGB: 16, StorageGB: 512, Processor: "i5"},
	}
	e := NewRecommendationEngine(catalog, EngineConfig{})

	rec := e.Recommend(domain.RecommendRequest{Budget: 500, UseCategory: domain.UseGaming})

	assert.NotNil(t, rec.Items)
	assert.Empty(t, rec.Items)
	assert.True(t, rec.Relaxed)
}

func TestRecommend_StrictFilter(t *testing.T) {
	e := NewRecommendationEngine(mixedCatalog(), EngineConfig{})

	t.Run("budget bounds every result", func(t *testing.T) {
		rec := e.Recommend(domain.RecommendRequest{Budget: 1000, UseCategory: domain.UseGeneral})
		assert.False(t, rec.Relaxed)
		require.NotEmpty(t, rec.Items)
		for _, item := range rec.Items {
			assert.LessOrEqual(t, item.Price, 1000.0)
		}
	})

	t.Run("brand is case-insensitive", func(t *testing.T) {
		rec := e.Recommend(domain.RecommendRequest{Budget: 2000, UseCategory: domain.UseGeneral, BrandPreference: "dell"})
		require.Len(t, rec.Items, 1)
		assert.Equal(t, "c", rec.Items[0].ID)
	})

	t.Run("None gpu does not satisfy gpu preference", func(t *testing.T) {
		rec := e.Recommend(domain.RecommendRequest{Budget: 2000, UseCategory: domain.UseGeneral, PreferGPU: true})
		require.Len(t, rec.Items, 1)
		assert.Equal(t, "b", rec.Items[0].ID)
	})

	t.Run("explicit minimums override the profile", func(t *testing.T) {
		rec := e.Recommend(domain.RecommendRequest{
			Budget:       2000,
			UseCategory:  domain.UseGeneral,
			MinStorageGB: intPtr(1000),
		})
		require.Len(t, rec.Items, 1)
		assert.Equal(t, "b", rec.Items[0].ID)

		rec = e.Recommend(domain.RecommendRequest{
			Budget:      2000,
			UseCategory: domain.UseProgramming,
			MinRAMGB:    intPtr(8),
		})
		assert.Len(t, rec.Items, 3, "programming storage minimum still applies")
	})

	t.Run("unknown category falls back to general", func(t *testing.T) {
		general := e.Recommend(domain.RecommendRequest{Budget: 1000, UseCategory: domain.UseGeneral})
		unknown := e.Recommend(domain.RecommendRequest{Budget: 1000, UseCategory: "astronomy"})
		assert.Equal(t, general, unknown)
	})
}

func TestRecommend_Relaxation(t *testing.T) {
	e := NewRecommendationEngine(mixedCatalog(), EngineConfig{})

	t.Run("relaxed pass drops brand and raises budget", func(t *testing.T) {
		rec := e.Recommend(domain.RecommendRequest{Budget: 700, UseCategory: domain.UseGeneral, BrandPreference: "Lenovo"})
		require.True(t, rec.Relaxed)
		ids := make([]string, 0, len(rec.Items))
		for _, item := range rec.Items {
			assert.LessOrEqual(t, item.Price, 700*1.10)
			ids = append(ids, item.ID)
		}
		assert.ElementsMatch(t, []string{"a", "d"}, ids)
	})

	t.Run("relaxed pass resets minimums to the profile", func(t *testing.T) {
		rec := e.Recommend(domain.RecommendRequest{Budget: 700, UseCategory: domain.UseGeneral, MinRAMGB: intPtr(64)})
		require.True(t, rec.Relaxed)
		assert.NotEmpty(t, rec.Items)
	})

	t.Run("relaxed pass keeps gpu requirement", func(t *testing.T) {
		rec := e.Recommend(domain.RecommendRequest{Budget: 800, UseCategory: domain.UseGeneral, PreferGPU: true})
		assert.True(t, rec.Relaxed)
		assert.Empty(t, rec.Items)
	})

	t.Run("scores use the requested budget", func(t *testing.T) {
		catalog := sliceCatalog{
			{ID: "x", Brand: "HP", Price: 1050, RAMGB: 8, StorageGB: 256, Processor: "Celeron"},
		}
		rec := NewRecommendationEngine(catalog, EngineConfig{}).
			Recommend(domain.RecommendRequest{Budget: 1000, UseCategory: domain.UseGeneral})
		require.True(t, rec.Relaxed)
		require.Len(t, rec.Items, 1)

		want := 0.4*(1-1050.0/1000) + 0.1*(8.0/32) + 0.1*(256.0/1000)
		assert.InDelta(t, want, rec.Items[0].Score, 1e-9)
	})

	t.Run("no relaxation when strict pass matches", func(t *testing.T) {
		rec := e.Recommend(domain.RecommendRequest{Budget: 700, UseCategory: domain.UseGeneral})
		assert.False(t, rec.Relaxed)
		require.Len(t, rec.Items, 1)
		assert.Equal(t, "a", rec.Items[0].ID)
	})
}

func TestRecommend_Limit(t *testing.T) {
	e := NewRecommendationEngine(mixedCatalog(), EngineConfig{DefaultLimit: 2})

	rec := e.Recommend(domain.RecommendRequest{Budget: 5000, UseCategory: domain.UseGeneral})
	assert.Len(t, rec.Items, 2)

	rec = e.Recommend(domain.RecommendRequest{Budget: 5000, UseCategory: domain.UseGeneral, Limit: 3})
	assert.Len(t, rec.Items, 3)
}

func TestRecommend_SortedAndStable(t *testing.T) {
	twin := domain.Product{Brand: "Acer", Price: 600, RAMGB: 8, StorageGB: 256, Processor: "i5"}
	first, second, third := twin, twin, twin
	first.ID, second.ID, third.ID = "t1", "t2", "t3"

	e := NewRecommendationEngine(sliceCatalog{first, second, third}, EngineConfig{})
	rec := e.Recommend(domain.RecommendRequest{Budget: 1000, UseCategory: domain.UseStudent})

	require.Len(t, rec.Items, 3)
	assert.Equal(t, []string{"t1", "t2", "t3"}, []string{rec.Items[0].ID, rec.Items[1].ID, rec.Items[2].ID})

	rec = NewRecommendationEngine(mixedCatalog(), EngineConfig{}).
		Recommend(domain.RecommendRequest{Budget: 5000, UseCategory: domain.UseBusiness})
	for i := 1; i < len(rec.Items); i++ {
		assert.GreaterOrEqual(t, rec.Items[i-1].Score, rec.Items[i].Score)
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	catalog := mixedCatalog()
	e := NewRecommendationEngine(catalog, EngineConfig{})
	req := domain.RecommendRequest{Budget: 1200, UseCategory: domain.UseProgramming, BrandPreference: "asus"}

	first := e.Recommend(req)
	second := e.Recommend(req)

	assert.Equal(t, first, second)
	assert.Equal(t, mixedCatalog(), catalog, "catalog must not be mutated")
}

func TestCalculateScore(t *testing.T) {
	t.Run("gpu weight counts only dedicated gpus", func(t *testing.T) {
		gaming := ProfileFor(domain.UseGaming)
		withGPU := domain.Product{Price: 1000, RAMGB: 16, StorageGB: 512, Processor: "Ryzen 7", GPU: strPtr("RTX 4060")}
		noGPU := withGPU
		noGPU.GPU = strPtr("None")

		diff := calculateScore(withGPU, gaming, 1000) - calculateScore(noGPU, gaming, 1000)
		assert.InDelta(t, 0.4, diff, 1e-9)
	})

	t.Run("general profile ignores gpu", func(t *testing.T) {
		general := ProfileFor(domain.UseGeneral)
		withGPU := domain.Product{Price: 800, RAMGB: 8, StorageGB: 256, GPU: strPtr("RTX 4060")}
		noGPU := withGPU
		noGPU.GPU = nil

		assert.Equal(t, calculateScore(noGPU, general, 1000), calculateScore(withGPU, general, 1000))
	})

	t.Run("sub-scores saturate at their ceilings", func(t *testing.T) {
		general := ProfileFor(domain.UseGeneral)
		big := domain.Product{Price: 0, RAMGB: 64, StorageGB: 4000, BatteryLifeHours: floatPtr(30), WeightKG: floatPtr(0)}

		// price 0.4 + battery 0.3 + ram 0.1 + storage 0.1 + weight 0.1
		assert.InDelta(t, 1.0, calculateScore(big, general, 1000), 1e-9)
	})

	t.Run("heavy laptops get no weight credit", func(t *testing.T) {
		business := ProfileFor(domain.UseBusiness)
		heavy := domain.Product{Price: 1000, WeightKG: floatPtr(3.5)}
		light := domain.Product{Price: 1000, WeightKG: floatPtr(1.5)}

		assert.InDelta(t, 0.15, calculateScore(light, business, 1000)-calculateScore(heavy, business, 1000), 1e-9)
	})
}

func TestProcessorScore(t *testing.T) {
	keywords := []string{"i7", "ryzen 7"}

	assert.Equal(t, 1.0, processorScore("Intel Core i7-1165G7", keywords))
	assert.Equal(t, 1.0, processorScore("AMD RYZEN 7 7735HS", keywords))
	assert.Equal(t, 0.0, processorScore("Apple M2", keywords))
	assert.Equal(t, 0.0, processorScore("", keywords))
	assert.Equal(t, 0.0, processorScore("Intel Core i7", nil))
}
