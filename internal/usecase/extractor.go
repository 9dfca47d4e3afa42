package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/laptopfinder/backend/internal/domain"
	"github.com/laptopfinder/backend/internal/logging"
)

// Budget patterns in priority order. The first one that matches wins.
var budgetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$?(\d{3,5}(?:,\d{3})*)(?:\s*(?:dollars|USD|bucks))?`),
	regexp.MustCompile(`(?i)budget\s*(?:is|of)?\s*\$?(\d{3,5}(?:,\d{3})*)`),
	regexp.MustCompile(`(?i)spend\s*(?:up to)?\s*\$?(\d{3,5}(?:,\d{3})*)`),
	regexp.MustCompile(`(?i)(?:under|below|less than)\s*\$?(\d{3,5}(?:,\d{3})*)`),
	regexp.MustCompile(`(?i)(?:max|maximum)?\s*(?:budget|price)?\s*(?:of)?\s*\$?(\d{3,5}(?:,\d{3})*)`),
}

// categoryPatterns is scanned in order; the first category with any matching
// pattern is the extracted one. General is never produced here.
var categoryPatterns = []struct {
	category domain.UseCategory
	patterns []*regexp.Regexp
}{
	{domain.UseGaming, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:gaming|games|gamer|play games)`),
		regexp.MustCompile(`(?i)(?:fps|shooter|mmo|rpg|strategy|simulation)`),
	}},
	{domain.UseBusiness, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:business|work|office|professional|corporate)`),
		regexp.MustCompile(`(?i)(?:presentations|spreadsheets|documents|meetings)`),
	}},
	{domain.UseStudent, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:student|school|college|university|campus|education)`),
		regexp.MustCompile(`(?i)(?:study|studying|coursework|assignments|homework)`),
	}},
	{domain.UseCreative, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:creative|design|art|artist|creator)`),
		regexp.MustCompile(`(?i)(?:photo|video|editing|photoshop|illustrator|premiere|after effects)`),
	}},
	{domain.UseProgramming, []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:programming|coding|development|developer|software)`),
		regexp.MustCompile(`(?i)(?:code|compile|development|IDE|programming)`),
	}},
}

var (
	brandPattern   = regexp.MustCompile(`(?i)(?:prefer|want|like)\s+(?:a\s+)?(\w+)(?:\s+laptop)?`)
	ramPattern     = regexp.MustCompile(`(?i)(\d+)\s*(?:GB|gigs?)?\s*(?:of)?\s*(?:RAM|memory)`)
	storagePattern = regexp.MustCompile(`(?i)(\d+)\s*(?:GB|TB|gigs?)?\s*(?:of)?\s*(?:storage|SSD|hard drive|HDD)`)
	gpuPattern     = regexp.MustCompile(`(?i)(?:dedicated|good|gaming)\s+(?:GPU|graphics)`)

	greetingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:hi|hello|hey|greetings|howdy)\b`),
		regexp.MustCompile(`(?i)\b(?:good\s+(?:morning|afternoon|evening))\b`),
		regexp.MustCompile(`(?i)^(?:start|begin|help)$`),
	}
)

// knownBrands is the allow-list for brand extraction (lower-case)
var knownBrands = map[string]bool{
	"dell":      true,
	"hp":        true,
	"lenovo":    true,
	"asus":      true,
	"acer":      true,
	"apple":     true,
	"microsoft": true,
	"msi":       true,
	"razer":     true,
}

// PreferenceExtractor turns a free-text utterance into a partial preference record
type PreferenceExtractor struct {
	enableDebugLogging bool
}

// NewPreferenceExtractor creates a new extractor
func NewPreferenceExtractor(enableDebugLogging bool) *PreferenceExtractor {
	return &PreferenceExtractor{
		enableDebugLogging: enableDebugLogging,
	}
}

// Extract scans one utterance. It never fails: anything that does not match
// simply stays unset in the returned record. Each field is extracted
// independently so one utterance may fill several fields.
func (e *PreferenceExtractor) Extract(utterance string) domain.Preferences {
	var prefs domain.Preferences

	if budget, ok := extractBudget(utterance); ok {
		prefs.Budget = &budget
	}
	if category, ok := extractUseCategory(utterance); ok {
		prefs.UseCategory = &category
	}
	if brand, ok := extractBrand(utterance); ok {
		prefs.BrandPreference = &brand
	}
	if ram, ok := extractRAM(utterance); ok {
		prefs.MinRAMGB = &ram
	}
	if storage, ok := extractStorage(utterance); ok {
		prefs.MinStorageGB = &storage
	}
	if gpuPattern.MatchString(utterance) {
		gpu := true
		prefs.PreferGPU = &gpu
	}

	if e.enableDebugLogging {
		logging.Debug().
			Str("utterance", utterance).
			Strs("fields", prefs.SetFields()).
			Msg("preferences extracted")
	}

	return prefs
}

// IsGreeting reports whether the utterance is a greeting or a bare start command.
func (e *PreferenceExtractor) IsGreeting(utterance string) bool {
	for _, pattern := range greetingPatterns {
		if pattern.MatchString(utterance) {
			return true
		}
	}
	return false
}

func extractBudget(s string) (float64, bool) {
	for _, pattern := range budgetPatterns {
		m := pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil || value < 0 {
			continue
		}
		return value, true
	}
	return 0, false
}

func extractUseCategory(s string) (domain.UseCategory, bool) {
	for _, entry := range categoryPatterns {
		for _, pattern := range entry.patterns {
			if pattern.MatchString(s) {
				return entry.category, true
			}
		}
	}
	return "", false
}

// extractBrand only looks at the first "prefer/want/like X" phrase.
func extractBrand(s string) (string, bool) {
	m := brandPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	brand := strings.ToLower(m[1])
	if !knownBrands[brand] {
		return "", false
	}
	return brand, true
}

func extractRAM(s string) (int, bool) {
	m := ramPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	ram, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return ram, true
}

// extractStorage normalizes terabytes to gigabytes (1 TB = 1000 GB).
func extractStorage(s string) (int, bool) {
	m := storagePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	storage, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if strings.Contains(strings.ToUpper(m[0]), "TB") {
		storage *= 1000
	}
	return storage, true
}
