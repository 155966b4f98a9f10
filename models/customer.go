package models

import "time"

type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Email       string    `gorm:"type:varchar(100)" json:"email"`
	Password    string    `gorm:"type:varchar(255)" json:"-"`
	PhoneNumber string    `gorm:"type:varchar(15)" json:"phone_number"`
	Address     string    `gorm:"type:text" json:"address"`
	UserType    string    `gorm:"type:varchar(50);not null;default:'Customer'" json:"user_type"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
