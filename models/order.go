package models

import "time"

type Order struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CustomerID    *uint          `gorm:"index" json:"customer_id,omitempty"`
	Customer      *Customer      `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"customer,omitempty"`
	RestaurantID  *uint          `gorm:"index" json:"restaurant_id,omitempty"`
	Restaurant    *Restaurant    `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"restaurant,omitempty"`
	AgentID       *uint          `gorm:"index" json:"agent_id,omitempty"`
	Agent         *DeliveryAgent `gorm:"foreignKey:AgentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"agent,omitempty"`
	PaymentMethod string         `gorm:"type:varchar(50);not null;default:'Cash'" json:"payment_method"`
	OrderDate     time.Time      `gorm:"not null" json:"order_date"`
	TotalAmount   float64        `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	OrderStatus   string         `gorm:"type:varchar(50);not null;default:'Pending'" json:"order_status"`
	OrderDetails  []OrderDetail  `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order_details,omitempty"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
}
