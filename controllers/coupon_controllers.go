package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food_delivery_admin/models"
	"food_delivery_admin/utils"
)

type CouponController struct {
	DB *gorm.DB
}

func NewCouponController(db *gorm.DB) *CouponController {
	return &CouponController{DB: db}
}

// GetAllCoupons -> newest first, restaurant preloaded
func (cpc *CouponController) GetAllCoupons(c *gin.Context) {
	var coupons []models.Coupon
	if err := cpc.DB.Preload("Restaurant").Order("id desc").Find(&coupons).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of coupons", coupons)
}

// CreateCoupon -> code must be unique; a duplicate fails on the DB constraint
// and leaves the table unchanged
func (cpc *CouponController) CreateCoupon(c *gin.Context) {
	type reqBody struct {
		Code               string  `form:"code" json:"code" binding:"required"`
		DiscountPercentage float64 `form:"discount" json:"discount"`
		ValidUntil         string  `form:"valid_until" json:"valid_until"`
		RestaurantID       *uint   `form:"restaurant_id" json:"restaurant_id"`
	}

	var req reqBody
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	coupon := models.Coupon{
		Code:               req.Code,
		DiscountPercentage: req.DiscountPercentage,
		Active:             true,
		RestaurantID:       req.RestaurantID,
	}

	if req.ValidUntil != "" {
		validUntil, err := time.Parse("2006-01-02", req.ValidUntil)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		coupon.ValidUntil = &validUntil
	}

	if err := cpc.DB.Create(&coupon).Error; err != nil {
		if isDuplicateKeyError(err) {
			utils.RespondError(c, http.StatusConflict, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Coupon created (ID=%d, code=%s)", coupon.ID, coupon.Code)

	utils.RespondJSON(c, http.StatusCreated, "Coupon added", coupon)
}

// isDuplicateKeyError matches unique-constraint violations across both
// backends (SQLite and MySQL word them differently).
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}

func (cpc *CouponController) DeleteCoupon(c *gin.Context) {
	idStr := c.Param("id")
	id, _ := strconv.Atoi(idStr)

	if err := cpc.DB.Delete(&models.Coupon{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Coupon deleted", gin.H{"coupon_id": id})
}
