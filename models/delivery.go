package models

import "time"

type Delivery struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	OrderID        uint           `gorm:"not null;index" json:"order_id"`
	Order          Order          `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order"`
	AgentID        *uint          `gorm:"index" json:"agent_id,omitempty"`
	Agent          *DeliveryAgent `gorm:"foreignKey:AgentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"agent,omitempty"`
	PickupTime     time.Time      `gorm:"not null" json:"pickup_time"`
	DeliveryTime   *time.Time     `json:"delivery_time,omitempty"`
	DeliveryStatus string         `gorm:"type:varchar(50);not null;default:'Picked Up'" json:"delivery_status"`
	CreatedAt      time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null" json:"updated_at"`
}
