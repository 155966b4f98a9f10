package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"food_delivery_admin/models"
	"food_delivery_admin/utils"
)

// CouponSweeper deactivates coupons whose validity date has passed.
type CouponSweeper struct {
	DB   *gorm.DB
	cron *cron.Cron
}

func NewCouponSweeper(db *gorm.DB) *CouponSweeper {
	return &CouponSweeper{DB: db}
}

func (s *CouponSweeper) Start() {
	s.cron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// hourly is plenty for date-granular expiry
	if _, err := s.cron.AddFunc("@hourly", s.Sweep); err != nil {
		utils.ErrorLogger.Printf("Failed to schedule coupon sweeper: %v", err)
		return
	}

	s.cron.Start()
	utils.InfoLogger.Println("Coupon sweeper started (hourly)")
}

func (s *CouponSweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *CouponSweeper) Sweep() {
	result := s.DB.Model(&models.Coupon{}).
		Where("active = ? AND valid_until IS NOT NULL AND valid_until < ?", true, time.Now()).
		Update("active", false)

	if result.Error != nil {
		utils.ErrorLogger.Printf("Coupon sweep failed: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		utils.InfoLogger.Printf("Deactivated %d expired coupon(s)", result.RowsAffected)
	}
}
