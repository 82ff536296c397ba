package models

type Appointment struct {
	ID              string `bson:"_id,omitempty"`
	UserID          string `bson:"userId"`
	ClinicID        string `bson:"clinicId"`
	AppointmentDate string `bson:"appointmentDate"`
	AppointmentTime string `bson:"appointmentTime"`
	Status          string `bson:"status"`
	Notes           string `bson:"notes,omitempty"`
	ReminderSent    bool   `bson:"reminderSent"`
	TimeModel       `bson:",inline"`
}
