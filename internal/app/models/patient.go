package models

type Patient struct {
	ID          string `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Gender      string `json:"gender" bson:"gender"`
	DateOfBirth string `json:"dob" bson:"dob"`
	UniqueID    string `json:"uniqueId" bson:"uniqueId"`
	TimeModel   `bson:",inline"`
}
