// internal/models/vehicle.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Vehicle is a registered car/vehicle. RegNr is stored trimmed and uppercased
// and must be unique across all vehicles. PurchasePrice, SalePrice and
// SoldDate are optional; SoldDate being non-nil means the vehicle is sold.
type Vehicle struct {
	gorm.Model
	RegNr         string     `json:"regnr" gorm:"size:32;uniqueIndex;not null"`
	Make          string     `json:"make" gorm:"size:64;not null"`
	VType         string     `json:"vtype" gorm:"size:64;not null"`
	VModel        string     `json:"model" gorm:"column:model;size:64;not null"`
	PurchasePrice *float64   `json:"purchase_price"`
	SalePrice     *float64   `json:"sale_price"`
	SoldDate      *time.Time `json:"sold_date"`

	// Entries are removed together with the vehicle. No delete route exists
	// today; the cascade is declared for when one does.
	Entries []ServiceEntry `json:"entries,omitempty" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// Sold reports whether a sale has been recorded for the vehicle.
// Value receiver so templates can call it on copies.
func (v Vehicle) Sold() bool {
	return v.SoldDate != nil
}
