// internal/models/service_entry.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// ServiceEntry is one service or repair record belonging to a vehicle.
// Category is free-form, conventionally "service" or "repair".
type ServiceEntry struct {
	gorm.Model
	VehicleID   uint      `json:"vehicle_id" gorm:"not null;index"`
	Date        time.Time `json:"date" gorm:"type:date;not null"`
	Category    string    `json:"category" gorm:"size:16;not null;default:service"`
	Description string    `json:"description" gorm:"not null;default:''"`
	Cost        float64   `json:"cost" gorm:"not null;default:0"`
	Odometer    int       `json:"odometer" gorm:"not null;default:0"`
}

func (ServiceEntry) TableName() string {
	return "service_entries"
}
