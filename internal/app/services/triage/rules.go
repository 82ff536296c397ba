package triage

import (
	"github.com/r-weda/my-afya-link/internal/pkg/constvars"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
)

// Classification policy, kept as data so it can be audited and versioned
// without touching the evaluation flow: two keyword sets, one cardinality
// threshold, and the fixed recommendation per severity.

var urgentSymptoms = map[string]struct{}{
	"Chest pain":           {},
	"Difficulty breathing": {},
}

var moderateSymptoms = map[string]struct{}{
	"Fever":    {},
	"Diarrhea": {},
	"Nausea":   {},
}

const moderateCardinalityThreshold = 3

type severityRule struct {
	matches        func(selected map[string]struct{}) bool
	recommendation responses.Recommendation
}

// severityRules is evaluated in priority order; the first match wins and the
// final rule is a catch-all, so evaluation is total.
var severityRules = []severityRule{
	{
		matches: func(selected map[string]struct{}) bool {
			return intersects(selected, urgentSymptoms)
		},
		recommendation: responses.Recommendation{
			Severity:    constvars.SeverityHigh,
			Title:       "Seek Immediate Medical Attention",
			Description: "Your symptoms may require urgent care. Please visit the nearest hospital or call emergency services.",
			Action:      "Call 999 or 112 for emergencies",
		},
	},
	{
		matches: func(selected map[string]struct{}) bool {
			return intersects(selected, moderateSymptoms) || len(selected) >= moderateCardinalityThreshold
		},
		recommendation: responses.Recommendation{
			Severity:    constvars.SeverityModerate,
			Title:       "Visit a Healthcare Provider",
			Description: "Based on your symptoms, we recommend scheduling an appointment with a doctor within 24-48 hours.",
			Action:      "Book an appointment",
		},
	},
	{
		matches: func(selected map[string]struct{}) bool { return true },
		recommendation: responses.Recommendation{
			Severity:    constvars.SeverityLow,
			Title:       "Monitor Your Symptoms",
			Description: "Your symptoms appear mild. Rest, stay hydrated, and monitor. If symptoms persist beyond 3 days, visit a doctor.",
			Action:      "View health tips",
		},
	},
}

func intersects(selected, keywords map[string]struct{}) bool {
	for symptom := range selected {
		if _, ok := keywords[symptom]; ok {
			return true
		}
	}
	return false
}
