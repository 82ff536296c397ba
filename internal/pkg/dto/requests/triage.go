package requests

type SymptomCheck struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required"`
	Notes    string   `json:"notes,omitempty"`
}
