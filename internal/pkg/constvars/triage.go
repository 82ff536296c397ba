package constvars

// Published symptom catalog shown by the client. The classifier accepts
// labels outside this list; they only count toward the cardinality rule.
var SymptomCatalog = []string{
	"Headache", "Fever", "Cough", "Fatigue", "Sore throat",
	"Nausea", "Body aches", "Diarrhea", "Chest pain", "Dizziness",
	"Stomach pain", "Difficulty breathing",
}

const (
	SeverityLow      = "low"
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
)
