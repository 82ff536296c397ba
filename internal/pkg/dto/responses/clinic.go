package responses

type Clinic struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	PhoneNumber    string   `json:"phoneNumber,omitempty"`
	OperatingHours string   `json:"operatingHours,omitempty"`
	Services       []string `json:"services,omitempty"`
	IsVerified     bool     `json:"isVerified"`
	Latitude       float64  `json:"latitude,omitempty"`
	Longitude      float64  `json:"longitude,omitempty"`
}
