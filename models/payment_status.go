package models

import "time"

// PaymentStatus tracks the payment state of an order. External gateways are
// out of scope, so this is plain bookkeeping.
type PaymentStatus struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       uint      `gorm:"not null;index" json:"order_id"`
	Order         Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	PaymentStatus string    `gorm:"type:varchar(50);not null;default:'Pending'" json:"payment_status"`
	PaymentMethod string    `gorm:"type:varchar(50);not null;default:'Cash'" json:"payment_method"`
	ReferenceID   string    `gorm:"type:varchar(64);not null" json:"reference_id"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}
