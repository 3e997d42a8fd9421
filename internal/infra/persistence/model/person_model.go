// Package model contains the GORM persistence models.
package model

import (
	"time"
)

// PersonModel mirrors the 'persons' table. The store assigns the integer ID
// and both timestamps. Check constraints repeat the validator's ranges so
// the database independently rejects out-of-range values.
type PersonModel struct {
	ID        int64    `gorm:"primaryKey;autoIncrement"`
	FirstName string   `gorm:"type:varchar(80);not null;check:first_name <> ''"`
	LastName  string   `gorm:"type:varchar(80);not null;check:last_name <> ''"`
	Age       int      `gorm:"not null;check:age >= 0 AND age <= 120"`
	HeightCM  *float64 `gorm:"column:height_cm;type:numeric(5,2);check:height_cm >= 0 AND height_cm <= 300"`
	WeightKG  *float64 `gorm:"column:weight_kg;type:numeric(5,2);check:weight_kg >= 0 AND weight_kg <= 500"`

	CEP          *string `gorm:"column:cep;type:char(8)"`
	Street       *string `gorm:"type:text"`
	Neighborhood *string `gorm:"type:text"`
	City         *string `gorm:"type:text"`
	State        *string `gorm:"type:varchar(2)"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "persons"
}
