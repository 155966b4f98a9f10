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

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

func (rvc *ReviewController) GetAllReviews(c *gin.Context) {
	var reviews []models.Review
	if err := rvc.DB.Preload("Customer").Preload("Restaurant").Order("id desc").Find(&reviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reviews", reviews)
}

func (rvc *ReviewController) CreateReview(c *gin.Context) {
	type reqBody struct {
		CustomerID   *uint  `form:"customer_id" json:"customer_id"`
		RestaurantID *uint  `form:"restaurant_id" json:"restaurant_id"`
		Rating       int    `form:"rating" json:"rating" binding:"required,min=1,max=5"`
		Comment      string `form:"comment" json:"comment"`
	}

	var req reqBody
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	review := models.Review{
		CustomerID:   req.CustomerID,
		RestaurantID: req.RestaurantID,
		ReviewDate:   time.Now(),
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := rvc.DB.Create(&review).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Review added", review)
}

func (rvc *ReviewController) DeleteReview(c *gin.Context) {
	idStr := c.Param("id")
	id, _ := strconv.Atoi(idStr)

	if err := rvc.DB.Delete(&models.Review{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Review deleted", gin.H{"review_id": id})
}
