package database

import (
	"gorm.io/gorm"

	"food_delivery_admin/models"
)

// Migrate creates or updates the schema. AutoMigrate is idempotent, so
// running it against an already-correct schema is a no-op. Called once at
// startup, before the server accepts requests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Customer{},
		&models.FoodItem{},
		&models.Coupon{},
		&models.DeliveryAgent{},
		&models.Order{},
		&models.OrderDetail{},
		&models.PaymentStatus{},
		&models.Delivery{},
		&models.Review{},
	)
}
