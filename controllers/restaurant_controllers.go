package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food_delivery_admin/models"
	"food_delivery_admin/utils"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// GetAllRestaurants -> list restaurants ordered by name
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := rc.DB.Order("name").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	type reqBody struct {
		Name          string  `form:"name" json:"name" binding:"required"`
		Location      string  `form:"location" json:"location"`
		ContactNumber string  `form:"contact_number" json:"contact_number"`
		OpeningHours  string  `form:"opening_hours" json:"opening_hours"`
		Rating        float64 `form:"rating" json:"rating"`
	}

	var req reqBody
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant := models.Restaurant{
		Name:          req.Name,
		Location:      req.Location,
		ContactNumber: req.ContactNumber,
		OpeningHours:  req.OpeningHours,
		Rating:        req.Rating,
	}

	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Restaurant created (ID=%d, name=%s)", restaurant.ID, restaurant.Name)

	utils.RespondJSON(c, http.StatusCreated, "Restaurant added", restaurant)
}

// DeleteRestaurant -> dependent food items, coupons and orders keep their rows
// with the restaurant reference nulled out
func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	idStr := c.Param("id")
	id, _ := strconv.Atoi(idStr)

	if err := rc.DB.Delete(&models.Restaurant{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant deleted", gin.H{"restaurant_id": id})
}
