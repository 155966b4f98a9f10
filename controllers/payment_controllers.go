package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"food_delivery_admin/models"
	"food_delivery_admin/utils"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	var payments []models.PaymentStatus
	if err := pc.DB.Order("id desc").Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of payments", payments)
}

// CreatePayment -> bookkeeping row for an order; reference ID is generated
// here, not supplied by the caller
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	type reqBody struct {
		OrderID       uint   `form:"order_id" json:"order_id" binding:"required"`
		PaymentStatus string `form:"payment_status" json:"payment_status"`
		PaymentMethod string `form:"payment_method" json:"payment_method"`
	}

	var req reqBody
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := pc.DB.First(&order, req.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	if req.PaymentStatus == "" {
		req.PaymentStatus = "Pending"
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = order.PaymentMethod
	}

	payment := models.PaymentStatus{
		OrderID:       order.ID,
		PaymentStatus: req.PaymentStatus,
		PaymentMethod: req.PaymentMethod,
		ReferenceID:   uuid.NewString(),
	}

	if err := pc.DB.Create(&payment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Payment recorded (ID=%d, order=%d, ref=%s)", payment.ID, order.ID, payment.ReferenceID)

	utils.RespondJSON(c, http.StatusCreated, "Payment recorded", payment)
}

func (pc *PaymentController) DeletePayment(c *gin.Context) {
	idStr := c.Param("id")
	id, _ := strconv.Atoi(idStr)

	if err := pc.DB.Delete(&models.PaymentStatus{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Payment deleted", gin.H{"payment_id": id})
}
