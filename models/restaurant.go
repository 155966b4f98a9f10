package models

import "time"

type Restaurant struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Location      string    `gorm:"type:varchar(255)" json:"location"`
	ContactNumber string    `gorm:"type:varchar(15)" json:"contact_number"`
	OpeningHours  string    `gorm:"type:varchar(100)" json:"opening_hours"`
	Rating        float64   `gorm:"type:decimal(3,2);default:0" json:"rating"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
