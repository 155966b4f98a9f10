package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"food_delivery_admin/controllers"
	"food_delivery_admin/models"
)

func setupRestaurantRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewRestaurantController(db)
	r.GET("/restaurants", ctrl.GetAllRestaurants)
	r.POST("/restaurants", ctrl.CreateRestaurant)
	r.GET("/restaurants/delete/:id", ctrl.DeleteRestaurant)
	return r
}

func TestCreateRestaurant(t *testing.T) {
	db := setupTestDB(t)
	r := setupRestaurantRouter(db)

	w := performJSON(t, r, "POST", "/restaurants", map[string]interface{}{
		"name":           "Pizza Palace",
		"location":       "12 Main Street",
		"contact_number": "0812000001",
		"opening_hours":  "10:00-22:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, "Restaurant added", response["message"])

	var count int64
	db.Model(&models.Restaurant{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateRestaurantRequiresName(t *testing.T) {
	db := setupTestDB(t)
	r := setupRestaurantRouter(db)

	w := performJSON(t, r, "POST", "/restaurants", map[string]interface{}{
		"location": "nowhere",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// no row inserted on validation failure
	var count int64
	db.Model(&models.Restaurant{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetAllRestaurantsOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Restaurant{Name: "Spice Garden"})
	db.Create(&models.Restaurant{Name: "Burger Barn"})

	r := setupRestaurantRouter(db)
	w := performJSON(t, r, "GET", "/restaurants", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "Burger Barn", first["name"])
}

func TestDeleteRestaurantNullsDependentFoodItems(t *testing.T) {
	db := setupTestDB(t)

	restaurant := models.Restaurant{Name: "Pizza Palace"}
	db.Create(&restaurant)
	item := models.FoodItem{Name: "Margherita", Price: 12.99, RestaurantID: &restaurant.ID}
	db.Create(&item)

	r := setupRestaurantRouter(db)
	w := performJSON(t, r, "GET", "/restaurants/delete/"+strconv.Itoa(int(restaurant.ID)), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.FoodItem
	assert.NoError(t, db.First(&got, item.ID).Error)
	assert.Nil(t, got.RestaurantID)
}

func TestCreateRestaurantFromForm(t *testing.T) {
	db := setupTestDB(t)
	r := setupRestaurantRouter(db)

	form := url.Values{}
	form.Set("name", "Form Kitchen")
	form.Set("location", "5 Post Road")

	req, err := http.NewRequest("POST", "/restaurants", strings.NewReader(form.Encode()))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got models.Restaurant
	assert.NoError(t, db.Where("name = ?", "Form Kitchen").First(&got).Error)
	assert.Equal(t, "5 Post Road", got.Location)
}
