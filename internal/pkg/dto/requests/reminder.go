package requests

// SendReminder mirrors the JSON body accepted by the reminder endpoint.
// Field-level validation happens inside the dispatcher pipeline so the
// response can name every missing field at once.
type SendReminder struct {
	AppointmentID   string `json:"appointmentId,omitempty"`
	PhoneNumber     string `json:"phoneNumber"`
	PatientName     string `json:"patientName,omitempty"`
	ClinicName      string `json:"clinicName"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}
