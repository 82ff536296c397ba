package models

type Profile struct {
	ID          string `bson:"_id,omitempty"`
	UserID      string `bson:"userId"`
	FirstName   string `bson:"firstName,omitempty"`
	LastName    string `bson:"lastName,omitempty"`
	PhoneNumber string `bson:"phoneNumber,omitempty"`
	TimeModel   `bson:",inline"`
}
