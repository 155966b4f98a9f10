package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food_delivery_admin/models"
	"food_delivery_admin/utils"
)

type FoodItemController struct {
	DB *gorm.DB
}

func NewFoodItemController(db *gorm.DB) *FoodItemController {
	return &FoodItemController{DB: db}
}

// GetAllFoodItems -> newest first, restaurant preloaded for display
func (fc *FoodItemController) GetAllFoodItems(c *gin.Context) {
	var items []models.FoodItem
	if err := fc.DB.Preload("Restaurant").Order("id desc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of food items", items)
}

func (fc *FoodItemController) CreateFoodItem(c *gin.Context) {
	type reqBody struct {
		Name         string  `form:"name" json:"name" binding:"required"`
		Description  string  `form:"description" json:"description"`
		Price        float64 `form:"price" json:"price" binding:"required"`
		Category     string  `form:"category" json:"category"`
		Availability string  `form:"availability" json:"availability"`
		RestaurantID *uint   `form:"restaurant_id" json:"restaurant_id"`
	}

	var req reqBody
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Availability == "" {
		req.Availability = "Y"
	}

	item := models.FoodItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Availability: req.Availability,
		RestaurantID: req.RestaurantID,
	}

	if err := fc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Food item created (ID=%d, name=%s)", item.ID, item.Name)

	utils.RespondJSON(c, http.StatusCreated, "Food item added", item)
}

// DeleteFoodItem fails with a constraint error when order details still
// reference the item (RESTRICT).
func (fc *FoodItemController) DeleteFoodItem(c *gin.Context) {
	idStr := c.Param("id")
	id, _ := strconv.Atoi(idStr)

	if err := fc.DB.Delete(&models.FoodItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Food item deleted", gin.H{"food_id": id})
}
