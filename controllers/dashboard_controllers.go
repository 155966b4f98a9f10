package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food_delivery_admin/models"
	"food_delivery_admin/services"
	"food_delivery_admin/utils"
)

type DashboardController struct {
	DB    *gorm.DB
	Cache *services.StatsCache
}

func NewDashboardController(db *gorm.DB, cache *services.StatsCache) *DashboardController {
	return &DashboardController{DB: db, Cache: cache}
}

type dashboardStats struct {
	Restaurants  int64          `json:"restaurants"`
	Customers    int64          `json:"customers"`
	FoodItems    int64          `json:"food_items"`
	Orders       int64          `json:"orders"`
	LatestOrders []models.Order `json:"latest_orders"`
}

// GetStats -> entity counts plus the five most recent orders. A short-lived
// Redis snapshot is used when configured; a cache failure falls back to
// querying directly.
func (dc *DashboardController) GetStats(c *gin.Context) {
	if cached, ok := dc.Cache.Get(c.Request.Context()); ok {
		var stats dashboardStats
		if err := json.Unmarshal(cached, &stats); err == nil {
			utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
			return
		}
	}

	var stats dashboardStats
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Restaurant{}, &stats.Restaurants},
		{&models.Customer{}, &stats.Customers},
		{&models.FoodItem{}, &stats.FoodItems},
		{&models.Order{}, &stats.Orders},
	}
	for _, cnt := range counts {
		if err := dc.DB.Model(cnt.model).Count(cnt.dest).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if err := dc.DB.Preload("Customer").Preload("Restaurant").
		Order("id desc").Limit(5).Find(&stats.LatestOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if payload, err := json.Marshal(stats); err == nil {
		dc.Cache.Set(c.Request.Context(), payload)
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
