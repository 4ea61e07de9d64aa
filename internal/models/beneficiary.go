package models

import "time"

// BeneficiaryStatus is the enrollment state of a beneficiary
type BeneficiaryStatus string

const (
	BeneficiaryActive   BeneficiaryStatus = "active"
	BeneficiaryInactive BeneficiaryStatus = "inactive"
)

// Valid reports whether the status is one of the known values
func (s BeneficiaryStatus) Valid() bool {
	return s == BeneficiaryActive || s == BeneficiaryInactive
}

// Coordinate is a WGS84 point
type Coordinate struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Beneficiary represents an elderly person enrolled in the program
type Beneficiary struct {
	ID                   string            `bson:"_id,omitempty" json:"id"`
	Name                 string            `bson:"name" json:"name"`
	Age                  int               `bson:"age" json:"age"`
	BirthDate            string            `bson:"birth_date,omitempty" json:"birth_date,omitempty"`
	NationalID           string            `bson:"national_id" json:"national_id"`
	Phone                string            `bson:"phone" json:"phone"`
	Address              string            `bson:"address" json:"address"`
	Location             *Coordinate       `bson:"location,omitempty" json:"location"`
	EmergencyContact     string            `bson:"emergency_contact" json:"emergency_contact"`
	Pathologies          []string          `bson:"pathologies" json:"pathologies"`
	Medications          []string          `bson:"medications" json:"medications"`
	Disabilities         []string          `bson:"disabilities" json:"disabilities"`
	NutritionBeneficiary bool              `bson:"nutrition_beneficiary" json:"nutrition_beneficiary"`
	Status               BeneficiaryStatus `bson:"status" json:"status"`
	ImageURL             string            `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt            time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time         `bson:"updated_at" json:"updated_at"`
}

// HasConditions reports whether the beneficiary has any recorded pathology or disability
func (b Beneficiary) HasConditions() bool {
	return len(b.Pathologies) > 0 || len(b.Disabilities) > 0
}

// BeneficiaryForm is the editable subset of a beneficiary
type BeneficiaryForm struct {
	Name                 string            `json:"name" example:"María Rodríguez"`
	Age                  int               `json:"age" example:"72"`
	BirthDate            string            `json:"birth_date,omitempty" example:"1952-03-14"`
	NationalID           string            `json:"national_id" example:"V-4567890"`
	Phone                string            `json:"phone" example:"0414-1234567"`
	Address              string            `json:"address"`
	Location             *Coordinate       `json:"location,omitempty"`
	EmergencyContact     string            `json:"emergency_contact"`
	Pathologies          []string          `json:"pathologies"`
	Medications          []string          `json:"medications"`
	Disabilities         []string          `json:"disabilities"`
	NutritionBeneficiary bool              `json:"nutrition_beneficiary"`
	Status               BeneficiaryStatus `json:"status" enums:"active,inactive"`
	ImageURL             string            `json:"image_url,omitempty"`
}

// Beneficiary builds the row to be written for this form. Nil sequences become
// empty and an unset status defaults to active.
func (f BeneficiaryForm) Beneficiary() Beneficiary {
	b := Beneficiary{
		Name:                 f.Name,
		Age:                  f.Age,
		BirthDate:            f.BirthDate,
		NationalID:           f.NationalID,
		Phone:                f.Phone,
		Address:              f.Address,
		Location:             f.Location,
		EmergencyContact:     f.EmergencyContact,
		Pathologies:          nonNil(f.Pathologies),
		Medications:          nonNil(f.Medications),
		Disabilities:         nonNil(f.Disabilities),
		NutritionBeneficiary: f.NutritionBeneficiary,
		Status:               f.Status,
		ImageURL:             f.ImageURL,
	}
	if b.Status == "" {
		b.Status = BeneficiaryActive
	}
	return b
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
