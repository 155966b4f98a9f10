package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"food_delivery_admin/controllers"
	"food_delivery_admin/models"
)

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)

	restaurant := models.Restaurant{Name: "Pizza Palace"}
	db.Create(&restaurant)
	customer := models.Customer{Name: "Demo Customer"}
	db.Create(&customer)
	db.Create(&models.FoodItem{Name: "Margherita", Price: 12.99, RestaurantID: &restaurant.ID})

	for i := 0; i < 7; i++ {
		db.Create(&models.Order{CustomerID: &customer.ID, RestaurantID: &restaurant.ID, OrderStatus: "Pending"})
	}

	r := gin.New()
	ctrl := controllers.NewDashboardController(db, nil)
	r.GET("/", ctrl.GetStats)

	w := performJSON(t, r, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["restaurants"])
	assert.Equal(t, float64(1), data["customers"])
	assert.Equal(t, float64(1), data["food_items"])
	assert.Equal(t, float64(7), data["orders"])

	// only the five most recent orders, newest first
	latest := data["latest_orders"].([]interface{})
	assert.Len(t, latest, 5)
	first := latest[0].(map[string]interface{})
	assert.Equal(t, float64(7), first["id"])
}
