package models

import "time"

type Coupon struct {
	ID                 uint        `gorm:"primaryKey" json:"id"`
	Code               string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	DiscountPercentage float64     `gorm:"type:decimal(5,2);not null;default:0" json:"discount_percentage"`
	ValidUntil         *time.Time  `json:"valid_until,omitempty"`
	Active             bool        `gorm:"not null;default:true" json:"active"`
	RestaurantID       *uint       `gorm:"index" json:"restaurant_id,omitempty"`
	Restaurant         *Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"restaurant,omitempty"`
	CreatedAt          time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time   `gorm:"not null" json:"updated_at"`
}
