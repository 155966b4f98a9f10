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

type DeliveryController struct {
	DB *gorm.DB
}

func NewDeliveryController(db *gorm.DB) *DeliveryController {
	return &DeliveryController{DB: db}
}

// GetAllDeliveries -> newest first, order and agent joined for display
func (dc *DeliveryController) GetAllDeliveries(c *gin.Context) {
	var deliveries []models.Delivery
	if err := dc.DB.Preload("Order").Preload("Agent").Order("id desc").Find(&deliveries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of deliveries", deliveries)
}

// CreateDelivery assigns an agent to an order. The delivery row and the
// order's "Out for Delivery" status are written in one transaction.
func (dc *DeliveryController) CreateDelivery(c *gin.Context) {
	type reqBody struct {
		OrderID uint `form:"order_id" json:"order_id" binding:"required"`
		AgentID uint `form:"agent_id" json:"agent_id" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := dc.DB.First(&order, req.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	var agent models.DeliveryAgent
	if err := dc.DB.First(&agent, req.AgentID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrAgentNotFound)
		return
	}

	delivery := models.Delivery{
		OrderID:        order.ID,
		AgentID:        &agent.ID,
		PickupTime:     time.Now(),
		DeliveryStatus: "Picked Up",
	}

	err := dc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&delivery).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Updates(map[string]interface{}{"order_status": "Out for Delivery", "agent_id": agent.ID}).Error; err != nil {
			return err
		}
		return tx.Model(&models.DeliveryAgent{}).
			Where("id = ?", agent.ID).
			Update("availability_status", "N").Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Delivery created (ID=%d, order=%d, agent=%d)", delivery.ID, order.ID, agent.ID)

	utils.RespondJSON(c, http.StatusCreated, "Delivery created, order marked 'Out for Delivery'", delivery)
}

// CompleteDelivery -> records the delivery time and frees the agent
func (dc *DeliveryController) CompleteDelivery(c *gin.Context) {
	idStr := c.Param("id")
	id, _ := strconv.Atoi(idStr)

	var delivery models.Delivery
	if err := dc.DB.First(&delivery, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	now := time.Now()
	err := dc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&delivery).
			Updates(map[string]interface{}{"delivery_time": now, "delivery_status": "Delivered"}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Order{}).
			Where("id = ?", delivery.OrderID).
			Update("order_status", "Delivered").Error; err != nil {
			return err
		}
		if delivery.AgentID != nil {
			return tx.Model(&models.DeliveryAgent{}).
				Where("id = ?", *delivery.AgentID).
				Update("availability_status", "Y").Error
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Delivery completed (ID=%d)", delivery.ID)

	utils.RespondJSON(c, http.StatusOK, "Delivery completed", gin.H{"delivery_id": delivery.ID})
}

func (dc *DeliveryController) DeleteDelivery(c *gin.Context) {
	idStr := c.Param("id")
	id, _ := strconv.Atoi(idStr)

	if err := dc.DB.Delete(&models.Delivery{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Delivery deleted", gin.H{"delivery_id": id})
}
