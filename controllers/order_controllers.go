package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food_delivery_admin/models"
	"food_delivery_admin/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetAllOrders -> newest first, with customer and restaurant for display
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("Customer").Preload("Restaurant").Order("id desc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder -> new order with status 'Pending' and zero total; items are
// added afterwards through AddOrderDetail
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type reqBody struct {
		CustomerID    *uint  `form:"customer_id" json:"customer_id"`
		RestaurantID  *uint  `form:"restaurant_id" json:"restaurant_id"`
		PaymentMethod string `form:"payment_method" json:"payment_method"`
	}

	var req reqBody
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = "Cash"
	}

	order := models.Order{
		CustomerID:    req.CustomerID,
		RestaurantID:  req.RestaurantID,
		PaymentMethod: req.PaymentMethod,
		OrderDate:     time.Now(),
		TotalAmount:   0,
		OrderStatus:   "Pending",
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order created (ID=%d)", order.ID)

	utils.RespondJSON(c, http.StatusCreated, "Order created, add items next", order)
}

// GetOrderDetails -> line items of one order plus its stored total
func (oc *OrderController) GetOrderDetails(c *gin.Context) {
	idStr := c.Param("id")
	id, _ := strconv.Atoi(idStr)

	var order models.Order
	if err := oc.DB.Preload("Restaurant").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	var details []models.OrderDetail
	if err := oc.DB.Preload("FoodItem").Where("order_id = ?", order.ID).Order("id desc").Find(&details).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order details", gin.H{
		"order":        order,
		"details":      details,
		"total_amount": order.TotalAmount,
	})
}

// AddOrderDetail inserts a line item with the food item's current price
// frozen onto the row, then re-sums all line items and writes the total back
// to the order. Insert, re-sum and write-back share one transaction so the
// stored total never goes visible in a half-updated state.
func (oc *OrderController) AddOrderDetail(c *gin.Context) {
	idStr := c.Param("id")
	id, _ := strconv.Atoi(idStr)

	type reqBody struct {
		FoodID   uint `form:"food_id" json:"food_id" binding:"required"`
		Quantity int  `form:"quantity" json:"quantity" binding:"required,min=1"`
	}

	var req reqBody
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	var detail models.OrderDetail
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		var food models.FoodItem
		if err := tx.First(&food, req.FoodID).Error; err != nil {
			return ErrFoodNotFound
		}

		detail = models.OrderDetail{
			OrderID:  order.ID,
			FoodID:   food.ID,
			Quantity: req.Quantity,
			Price:    food.Price,
		}
		if err := tx.Create(&detail).Error; err != nil {
			return err
		}

		var total float64
		if err := tx.Model(&models.OrderDetail{}).
			Where("order_id = ?", order.ID).
			Select("COALESCE(SUM(quantity * price), 0)").
			Scan(&total).Error; err != nil {
			return err
		}

		return tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("total_amount", total).Error
	})
	if err != nil {
		if err == ErrFoodNotFound {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order item added (order=%d, food=%d, qty=%d)", order.ID, req.FoodID, req.Quantity)

	utils.RespondJSON(c, http.StatusCreated, "Item added", detail)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	idStr := c.Param("id")
	id, _ := strconv.Atoi(idStr)

	if err := oc.DB.Delete(&models.Order{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}
