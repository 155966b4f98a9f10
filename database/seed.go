package database

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"food_delivery_admin/models"
	"food_delivery_admin/utils"
)

// Seed inserts demonstration rows when the restaurants table is empty and
// makes sure the default admin account exists. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurants := []models.Restaurant{
		{Name: "Pizza Palace", Location: "12 Main Street", ContactNumber: "0812000001", OpeningHours: "10:00-22:00", Rating: 4.5},
		{Name: "Spice Garden", Location: "48 Curry Lane", ContactNumber: "0812000002", OpeningHours: "11:00-23:00", Rating: 4.2},
	}
	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			return err
		}
	}

	foodItems := []models.FoodItem{
		{Name: "Margherita", Description: "Tomato, mozzarella, basil", Price: 12.99, Category: "Pizza", Availability: "Y", RestaurantID: &restaurants[0].ID},
		{Name: "Pepperoni", Description: "Pepperoni and cheese", Price: 14.50, Category: "Pizza", Availability: "Y", RestaurantID: &restaurants[0].ID},
		{Name: "Butter Chicken", Description: "With basmati rice", Price: 11.25, Category: "Curry", Availability: "Y", RestaurantID: &restaurants[1].ID},
	}
	for i := range foodItems {
		if err := db.Create(&foodItems[i]).Error; err != nil {
			return err
		}
	}

	customer := models.Customer{
		Name:        "Demo Customer",
		Email:       "demo@example.com",
		PhoneNumber: "0899000001",
		Address:     "7 Sample Road",
		UserType:    "Customer",
	}
	if err := db.Create(&customer).Error; err != nil {
		return err
	}

	agent := models.DeliveryAgent{
		Name:               "Alex Rider",
		PhoneNumber:        "0877000001",
		VehicleNumber:      "B 1234 XY",
		AvailabilityStatus: "Y",
	}
	if err := db.Create(&agent).Error; err != nil {
		return err
	}

	validUntil := time.Now().AddDate(0, 1, 0)
	coupon := models.Coupon{
		Code:               "WELCOME10",
		DiscountPercentage: 10,
		ValidUntil:         &validUntil,
		Active:             true,
		RestaurantID:       &restaurants[0].ID,
	}
	if err := db.Create(&coupon).Error; err != nil {
		return err
	}

	utils.InfoLogger.Println("Seeded demonstration data")
	return nil
}

func seedAdmin(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    "admin@example.com",
		Password: string(hashed),
		Role:     "admin",
	}
	return db.Where(models.User{Email: admin.Email}).FirstOrCreate(&admin).Error
}
