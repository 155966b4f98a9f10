package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food_delivery_admin/models"
	"food_delivery_admin/utils"
)

type DeliveryAgentController struct {
	DB *gorm.DB
}

func NewDeliveryAgentController(db *gorm.DB) *DeliveryAgentController {
	return &DeliveryAgentController{DB: db}
}

func (ac *DeliveryAgentController) GetAllAgents(c *gin.Context) {
	var agents []models.DeliveryAgent
	if err := ac.DB.Order("id desc").Find(&agents).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of delivery agents", agents)
}

func (ac *DeliveryAgentController) CreateAgent(c *gin.Context) {
	type reqBody struct {
		Name               string `form:"name" json:"name" binding:"required"`
		PhoneNumber        string `form:"phone" json:"phone"`
		VehicleNumber      string `form:"vehicle" json:"vehicle"`
		AvailabilityStatus string `form:"availability" json:"availability"`
	}

	var req reqBody
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.AvailabilityStatus == "" {
		req.AvailabilityStatus = "Y"
	}

	agent := models.DeliveryAgent{
		Name:               req.Name,
		PhoneNumber:        req.PhoneNumber,
		VehicleNumber:      req.VehicleNumber,
		AvailabilityStatus: req.AvailabilityStatus,
	}

	if err := ac.DB.Create(&agent).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Delivery agent created (ID=%d, name=%s)", agent.ID, agent.Name)

	utils.RespondJSON(c, http.StatusCreated, "Delivery agent added", agent)
}

func (ac *DeliveryAgentController) DeleteAgent(c *gin.Context) {
	idStr := c.Param("id")
	id, _ := strconv.Atoi(idStr)

	if err := ac.DB.Delete(&models.DeliveryAgent{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Delivery agent deleted", gin.H{"agent_id": id})
}
