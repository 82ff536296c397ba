package responses

type Appointment struct {
	ID              string `json:"id"`
	ClinicID        string `json:"clinicId"`
	ClinicName      string `json:"clinicName,omitempty"`
	ClinicAddress   string `json:"clinicAddress,omitempty"`
	ClinicCity      string `json:"clinicCity,omitempty"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
	ReminderSent    bool   `json:"reminderSent"`
}

type CreateAppointment struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	ReminderAttempted bool   `json:"reminderAttempted"`
}
