package triage

import (
	"github.com/r-weda/my-afya-link/internal/app/contracts"
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
)

type triageUsecase struct{}

func NewTriageUsecase() contracts.TriageUsecase {
	return &triageUsecase{}
}

// Classify maps a set of symptom labels to a severity-tagged recommendation.
// Input is deduplicated into a set first, so repeated labels never skew the
// cardinality rule. Labels outside the published catalog are ordinary set
// members: they count toward cardinality but match no keyword rule.
func (u *triageUsecase) Classify(symptoms []string) *responses.Recommendation {
	selected := make(map[string]struct{}, len(symptoms))
	for _, symptom := range symptoms {
		selected[symptom] = struct{}{}
	}

	for _, rule := range severityRules {
		if rule.matches(selected) {
			recommendation := rule.recommendation
			return &recommendation
		}
	}

	// Unreachable: the last rule is a catch-all.
	return nil
}

func (u *triageUsecase) Catalog() []string {
	catalog := make([]string, len(constvars.SymptomCatalog))
	copy(catalog, constvars.SymptomCatalog)
	return catalog
}
