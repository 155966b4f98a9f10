package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"food_delivery_admin/controllers"
	"food_delivery_admin/models"
)

func setupFoodItemRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewFoodItemController(db)
	r.GET("/food_items", ctrl.GetAllFoodItems)
	r.POST("/food_items", ctrl.CreateFoodItem)
	r.GET("/food_items/delete/:id", ctrl.DeleteFoodItem)
	return r
}

func TestCreateFoodItem(t *testing.T) {
	db := setupTestDB(t)
	restaurant := models.Restaurant{Name: "Pizza Palace"}
	db.Create(&restaurant)

	r := setupFoodItemRouter(db)
	w := performJSON(t, r, "POST", "/food_items", map[string]interface{}{
		"name":          "Margherita",
		"price":         12.99,
		"category":      "Pizza",
		"restaurant_id": restaurant.ID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var item models.FoodItem
	assert.NoError(t, db.First(&item).Error)
	assert.Equal(t, "Y", item.Availability)
	assert.InDelta(t, 12.99, item.Price, 0.001)
}

func TestCreateFoodItemRejectsNonNumericPrice(t *testing.T) {
	db := setupTestDB(t)
	r := setupFoodItemRouter(db)

	form := url.Values{}
	form.Set("name", "Mystery Dish")
	form.Set("price", "cheap")

	req, err := http.NewRequest("POST", "/food_items", strings.NewReader(form.Encode()))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.FoodItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetAllFoodItemsIncludesRestaurant(t *testing.T) {
	db := setupTestDB(t)
	restaurant := models.Restaurant{Name: "Pizza Palace"}
	db.Create(&restaurant)
	db.Create(&models.FoodItem{Name: "Margherita", Price: 12.99, RestaurantID: &restaurant.ID})

	r := setupFoodItemRouter(db)
	w := performJSON(t, r, "GET", "/food_items", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)

	item := data[0].(map[string]interface{})
	rest := item["restaurant"].(map[string]interface{})
	assert.Equal(t, "Pizza Palace", rest["name"])
}
