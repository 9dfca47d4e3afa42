package usecase

import (
	"math"
	"sort"
	"strings"

	"github.com/laptopfinder/backend/internal/domain"
	"github.com/laptopfinder/backend/internal/logging"
	"github.com/laptopfinder/backend/internal/metrics"
)

// Normalization ceilings for sub-scores
const (
	ramCeilingGB        = 32.0   // RAM scores 1 at 32 GB and above
	storageCeilingGB    = 1000.0 // storage scores 1 at 1 TB and above
	batteryCeilingHours = 15.0   // battery scores 1 at 15 h and above
	weightCeilingKG     = 3.0    // weight scores 0 at 3 kg and above
)

const (
	defaultRelaxFactor  = 1.10
	defaultResultsLimit = 5
)

// EngineConfig holds configuration for the recommendation engine
type EngineConfig struct {
	RelaxBudgetFactor  float64
	DefaultLimit       int
	EnableDebugLogging bool
}

// RecommendationEngine filters, scores and ranks catalog products against a preference record.
// It never mutates catalog products; results are scored copies.
type RecommendationEngine struct {
	catalog            domain.Catalog
	relaxBudgetFactor  float64
	defaultLimit       int
	enableDebugLogging bool
}

// NewRecommendationEngine creates a new engine over a catalog
func NewRecommendationEngine(catalog domain.Catalog, config EngineConfig) *RecommendationEngine {
	factor := config.RelaxBudgetFactor
	if factor < 1 {
		factor = defaultRelaxFactor
	}

	limit := config.DefaultLimit
	if limit <= 0 {
		limit = defaultResultsLimit
	}

	return &RecommendationEngine{
		catalog:            catalog,
		relaxBudgetFactor:  factor,
		defaultLimit:       limit,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// filterCriteria is one pass of the filter step
type filterCriteria struct {
	budget       float64
	brand        string
	minRAMGB     int
	minStorageGB int
	requireGPU   bool
}

// Recommend returns catalog products matching the request, best first.
//
// The strict pass applies budget, RAM, storage, brand and GPU constraints.
// Only when it yields nothing, a single relaxed pass runs with the budget
// raised by the relax factor, the brand ignored and the RAM/storage
// minimums reset to the profile defaults. The GPU requirement is kept.
// Scores always use the requested budget.
func (e *RecommendationEngine) Recommend(req domain.RecommendRequest) domain.Recommendation {
	profile := ProfileFor(req.UseCategory)

	strict := filterCriteria{
		budget:       req.Budget,
		brand:        req.BrandPreference,
		minRAMGB:     profile.minRAM(),
		minStorageGB: profile.minStorage(),
		requireGPU:   profile.GPURequired || req.PreferGPU,
	}
	if req.MinRAMGB != nil {
		strict.minRAMGB = *req.MinRAMGB
	}
	if req.MinStorageGB != nil {
		strict.minStorageGB = *req.MinStorageGB
	}

	products := e.catalog.All()
	candidates := filterProducts(products, strict)

	relaxed := false
	if len(candidates) == 0 {
		relaxed = true
		candidates = filterProducts(products, filterCriteria{
			budget:       req.Budget * e.relaxBudgetFactor,
			minRAMGB:     profile.minRAM(),
			minStorageGB: profile.minStorage(),
			requireGPU:   strict.requireGPU,
		})
	}

	scored := scoreProducts(candidates, profile, req.Budget)

	limit := req.Limit
	if limit <= 0 {
		limit = e.defaultLimit
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}

	metrics.RecordRecommendation(string(profile.Category), relaxed, len(scored))

	if e.enableDebugLogging {
		logging.Debug().
			Str("use_category", string(profile.Category)).
			Float64("budget", req.Budget).
			Bool("relaxed", relaxed).
			Int("candidates", len(candidates)).
			Int("results", len(scored)).
			Msg("recommendation computed")
	}

	return domain.Recommendation{Items: scored, Relaxed: relaxed}
}

// filterProducts keeps catalog order.
func filterProducts(products []domain.Product, c filterCriteria) []domain.Product {
	var results []domain.Product
	for _, p := range products {
		if p.Price > c.budget {
			continue
		}
		if p.RAMGB < c.minRAMGB {
			continue
		}
		if p.StorageGB < c.minStorageGB {
			continue
		}
		if c.brand != "" && !p.MatchesBrand(c.brand) {
			continue
		}
		if c.requireGPU && !p.HasDedicatedGPU() {
			continue
		}
		results = append(results, p)
	}
	return results
}

// scoreProducts computes scores and sorts best first. The sort is stable so
// exact ties keep catalog order.
func scoreProducts(products []domain.Product, profile RequirementProfile, budget float64) []domain.ScoredProduct {
	if len(products) == 0 {
		return []domain.ScoredProduct{}
	}

	scored := make([]domain.ScoredProduct, 0, len(products))
	for _, p := range products {
		scored = append(scored, domain.ScoredProduct{
			Product: p,
			Score:   calculateScore(p, profile, budget),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// calculateScore is the weighted sum of per-feature sub-scores. Weights are
// not normalized. Price efficiency goes negative when a relaxed candidate
// costs more than the budget.
func calculateScore(p domain.Product, profile RequirementProfile, budget float64) float64 {
	score := 0.0

	priceEfficiency := 1 - p.Price/budget
	score += profile.Weight(FeaturePrice) * priceEfficiency

	score += profile.Weight(FeatureRAM) * math.Min(1, float64(p.RAMGB)/ramCeilingGB)

	score += profile.Weight(FeatureStorage) * math.Min(1, float64(p.StorageGB)/storageCeilingGB)

	score += profile.Weight(FeatureProcessor) * processorScore(p.Processor, profile.ProcessorKeywords)

	if w := profile.Weight(FeatureGPU); w > 0 && p.HasDedicatedGPU() {
		score += w
	}

	if p.BatteryLifeHours != nil {
		score += profile.Weight(FeatureBatteryLife) * math.Min(1, *p.BatteryLifeHours/batteryCeilingHours)
	}

	if p.WeightKG != nil {
		score += profile.Weight(FeatureWeight) * (1 - math.Min(1, *p.WeightKG/weightCeilingKG))
	}

	return score
}

// processorScore is 1 when any keyword appears in the processor description
func processorScore(processor string, keywords []string) float64 {
	lower := strings.ToLower(processor)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return 1
		}
	}
	return 0
}
