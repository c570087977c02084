package model

import (
	"time"
)

// StatusPending is the membership status assigned to every new registration.
const StatusPending = "Pending"

type Member struct {
	ID                string    `bson:"id" json:"id"`
	FirstName         string    `bson:"firstName" json:"firstName"`
	Surname           string    `bson:"surname" json:"surname"`
	Gender            string    `bson:"gender" json:"gender"`
	DateOfBirth       time.Time `bson:"dateOfBirth" json:"dateOfBirth"`
	MaritalStatus     string    `bson:"maritalStatus" json:"maritalStatus"`
	EducationLevel    string    `bson:"educationLevel" json:"educationLevel"`
	Phone             string    `bson:"phone" json:"phone"`
	Contact           string    `bson:"contact" json:"contact"`
	Location          string    `bson:"location" json:"location"`
	Ward              string    `bson:"ward" json:"ward"`
	LGA               string    `bson:"lga" json:"lga"`
	State             string    `bson:"state" json:"state"`
	FarmSize          string    `bson:"farmSize" json:"farmSize"`
	FarmLocation      string    `bson:"farmLocation" json:"farmLocation"`
	CropTypes         string    `bson:"cropTypes" json:"cropTypes"`
	YearsOfExperience int       `bson:"yearsOfExperience" json:"yearsOfExperience"`
	Cooperative       string    `bson:"cooperative" json:"cooperative"`
	NextOfKin         string    `bson:"nextOfKin" json:"nextOfKin"`
	NextOfKinPhone    string    `bson:"nextOfKinPhone" json:"nextOfKinPhone"`
	EnrollmentDate    time.Time `bson:"enrollmentDate" json:"enrollmentDate"`
	MembershipStatus  string    `bson:"membershipStatus" json:"membershipStatus"`
	PassportPhotos    []string  `bson:"passportPhotos" json:"passportPhotos"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
}
