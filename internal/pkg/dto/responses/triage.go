package responses

// Recommendation is the triage verdict. Title, description and action are
// display text derived 1:1 from the severity.
type Recommendation struct {
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}
