package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"food_delivery_admin/controllers"
	"food_delivery_admin/models"
)

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := controllers.NewOrderController(db)
	r.GET("/orders", ctrl.GetAllOrders)
	r.POST("/orders", ctrl.CreateOrder)
	r.GET("/orders/delete/:id", ctrl.DeleteOrder)
	r.GET("/order_details/:id", ctrl.GetOrderDetails)
	r.POST("/order_details/:id", ctrl.AddOrderDetail)
	return r
}

func seedOrderFixtures(t *testing.T, db *gorm.DB) (models.Restaurant, models.FoodItem, models.Order) {
	t.Helper()

	restaurant := models.Restaurant{Name: "Pizza Palace"}
	assert.NoError(t, db.Create(&restaurant).Error)

	food := models.FoodItem{Name: "Margherita", Price: 12.99, RestaurantID: &restaurant.ID}
	assert.NoError(t, db.Create(&food).Error)

	customer := models.Customer{Name: "Demo Customer"}
	assert.NoError(t, db.Create(&customer).Error)

	order := models.Order{CustomerID: &customer.ID, RestaurantID: &restaurant.ID, OrderStatus: "Pending"}
	assert.NoError(t, db.Create(&order).Error)

	return restaurant, food, order
}

func TestCreateOrderStartsPendingWithZeroTotal(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)

	w := performJSON(t, r, "POST", "/orders", map[string]interface{}{})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	assert.NoError(t, db.First(&order).Error)
	assert.Equal(t, "Pending", order.OrderStatus)
	assert.Equal(t, 0.0, order.TotalAmount)
	assert.Equal(t, "Cash", order.PaymentMethod)
}

func TestAddOrderDetailFreezesPriceAndRecomputesTotal(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)
	_, food, order := seedOrderFixtures(t, db)

	w := performJSON(t, r, "POST", fmt.Sprintf("/order_details/%d", order.ID), map[string]interface{}{
		"food_id":  food.ID,
		"quantity": 2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var got models.Order
	assert.NoError(t, db.First(&got, order.ID).Error)
	assert.InDelta(t, 25.98, got.TotalAmount, 0.001)

	// the line item carries the price at insertion time
	var detail models.OrderDetail
	assert.NoError(t, db.First(&detail).Error)
	assert.InDelta(t, 12.99, detail.Price, 0.001)

	// a later price change must not affect the frozen line item or the total
	assert.NoError(t, db.Model(&models.FoodItem{}).Where("id = ?", food.ID).Update("price", 99.0).Error)

	w = performJSON(t, r, "POST", fmt.Sprintf("/order_details/%d", order.ID), map[string]interface{}{
		"food_id":  food.ID,
		"quantity": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	assert.NoError(t, db.First(&got, order.ID).Error)
	assert.InDelta(t, 25.98+99.0, got.TotalAmount, 0.001)
}

func TestAddOrderDetailUnknownFood(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)
	_, _, order := seedOrderFixtures(t, db)

	w := performJSON(t, r, "POST", fmt.Sprintf("/order_details/%d", order.ID), map[string]interface{}{
		"food_id":  99999,
		"quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// nothing persisted
	var count int64
	db.Model(&models.OrderDetail{}).Count(&count)
	assert.Equal(t, int64(0), count)

	var got models.Order
	assert.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, 0.0, got.TotalAmount)
}

func TestAddOrderDetailRejectsBadQuantity(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)
	_, food, order := seedOrderFixtures(t, db)

	w := performJSON(t, r, "POST", fmt.Sprintf("/order_details/%d", order.ID), map[string]interface{}{
		"food_id":  food.ID,
		"quantity": "two",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(t, r, "POST", fmt.Sprintf("/order_details/%d", order.ID), map[string]interface{}{
		"food_id":  food.ID,
		"quantity": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderDetailsReturnsStoredTotal(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)
	_, food, order := seedOrderFixtures(t, db)

	performJSON(t, r, "POST", fmt.Sprintf("/order_details/%d", order.ID), map[string]interface{}{
		"food_id":  food.ID,
		"quantity": 3,
	})

	w := performJSON(t, r, "GET", fmt.Sprintf("/order_details/%d", order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.InDelta(t, 3*12.99, data["total_amount"].(float64), 0.001)
	details := data["details"].([]interface{})
	assert.Len(t, details, 1)
}

func TestDeleteOrderCascadesDetails(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)
	_, food, order := seedOrderFixtures(t, db)

	performJSON(t, r, "POST", fmt.Sprintf("/order_details/%d", order.ID), map[string]interface{}{
		"food_id":  food.ID,
		"quantity": 1,
	})

	w := performJSON(t, r, "GET", fmt.Sprintf("/orders/delete/%d", order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.OrderDetail{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
