package requests

type UpdateProfile struct {
	FirstName   string `json:"firstName,omitempty" validate:"max=100"`
	LastName    string `json:"lastName,omitempty" validate:"max=100"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty,phone_number"`
}
