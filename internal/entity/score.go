package entity

import "fmt"

type ScoreCategory string

const (
	CategoryHot          ScoreCategory = "hot"
	CategoryGood         ScoreCategory = "good"
	CategoryNurturing    ScoreCategory = "nurturing"
	CategoryOutOfProfile ScoreCategory = "out_of_profile"
)

const (
	DefaultScore = 50
	MinScore     = 0
	MaxScore     = 100
)

var categoryLabels = map[ScoreCategory]string{
	CategoryHot:          "Lead Quente",
	CategoryGood:         "Lead Bom",
	CategoryNurturing:    "Em Nutrição",
	CategoryOutOfProfile: "Fora do Perfil",
}

// Categorize é total: valores fora de [0,100] caem na faixa mais próxima,
// sem clamp e sem erro.
func Categorize(score int) ScoreCategory {
	switch {
	case score >= 80:
		return CategoryHot
	case score >= 60:
		return CategoryGood
	case score >= 40:
		return CategoryNurturing
	default:
		return CategoryOutOfProfile
	}
}

func (c ScoreCategory) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c ScoreCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ScoreCategories em ordem do mais quente para o mais frio.
func ScoreCategories() []ScoreCategory {
	return []ScoreCategory{CategoryHot, CategoryGood, CategoryNurturing, CategoryOutOfProfile}
}

func ParseScoreCategory(v string) (ScoreCategory, error) {
	c := ScoreCategory(v)
	if !c.Valid() {
		return "", fmt.Errorf("invalid score category %q", v)
	}
	return c, nil
}
