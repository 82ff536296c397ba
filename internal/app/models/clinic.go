package models

type Clinic struct {
	ID             string   `bson:"_id,omitempty"`
	Name           string   `bson:"name"`
	Address        string   `bson:"address"`
	City           string   `bson:"city"`
	PhoneNumber    string   `bson:"phoneNumber,omitempty"`
	OperatingHours string   `bson:"operatingHours,omitempty"`
	Services       []string `bson:"services,omitempty"`
	IsVerified     bool     `bson:"isVerified"`
	Latitude       float64  `bson:"latitude,omitempty"`
	Longitude      float64  `bson:"longitude,omitempty"`
	TimeModel      `bson:",inline"`
}
