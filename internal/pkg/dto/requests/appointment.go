package requests

type CreateAppointment struct {
	ClinicID        string `json:"clinicId" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointmentTime" validate:"required,datetime=15:04"`
	Notes           string `json:"notes,omitempty" validate:"max=500"`
}
