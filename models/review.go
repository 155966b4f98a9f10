package models

import "time"

type Review struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CustomerID   *uint       `gorm:"index" json:"customer_id,omitempty"`
	Customer     *Customer   `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"customer,omitempty"`
	RestaurantID *uint       `gorm:"index" json:"restaurant_id,omitempty"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"restaurant,omitempty"`
	ReviewDate   time.Time   `gorm:"not null" json:"review_date"`
	Rating       int         `gorm:"not null" json:"rating"`
	Comment      string      `gorm:"type:text" json:"comment"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}
