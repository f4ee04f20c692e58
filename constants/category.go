package constants

import (
	"strings"
)

type Category string

const (
	Theory       Category = "理论"
	Lab          Category = "实验"
	Computer     Category = "上机"
	Practice     Category = "实践"
	Unclassified Category = "未分类"
)

var allCategories = []Category{
	Theory,
	Lab,
	Computer,
	Practice,
}

// Marker pairs a cell symbol with the category it denotes. Order matters:
// the first marker found in a cell wins.
type Marker struct {
	Symbol   string
	Category Category
}

var CategoryMarkers = []Marker{
	{Symbol: "★", Category: Theory},
	{Symbol: "☆", Category: Lab},
	{Symbol: "◆", Category: Computer},
	{Symbol: "◇", Category: Practice},
}

// Canonicalize maps free-form category text to a known category. Unknown
// non-empty input is returned trimmed with ok=false so callers can keep it.
func Canonicalize(input string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Unclassified, false
	}

	// synonyms map
	synonyms := map[string]Category{
		"理论课":          Theory,
		"讲授":           Theory,
		"theory":       Theory,
		"lecture":      Theory,
		"实验课":          Lab,
		"lab":          Lab,
		"上机课":          Computer,
		"机房":           Computer,
		"computer":     Computer,
		"实践课":          Practice,
		"实训":           Practice,
		"practice":     Practice,
		"practicum":    Practice,
		"未知":           Unclassified,
		"unknown":      Unclassified,
		"unclassified": Unclassified,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Category(strings.TrimSpace(input)), false
}
