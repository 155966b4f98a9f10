package models

import "time"

type DeliveryAgent struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"type:varchar(100);not null" json:"name"`
	PhoneNumber        string    `gorm:"type:varchar(15)" json:"phone_number"`
	VehicleNumber      string    `gorm:"type:varchar(50)" json:"vehicle_number"`
	AvailabilityStatus string    `gorm:"type:varchar(1);not null;default:'Y'" json:"availability_status"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}
