package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"pos_cafe/constants"
	"pos_cafe/database"
	"pos_cafe/model"

	"github.com/robfig/cron/v3"
)

const dailyReportTTL = 5 * time.Minute

var reportCron *cron.Cron

func DailyReportCacheKey(date string, outletID uint) string {
	return fmt.Sprintf("report:daily:%s:%d", date, outletID)
}

// QueryDailySummary rolls up completed orders for one day straight from the
// orders table.
func QueryDailySummary(date string, outletID uint) (model.SalesSummary, error) {
	summary := model.SalesSummary{Period: date}
	err := database.DB.Raw(`
		SELECT COUNT(*) AS total_orders,
		       COALESCE(SUM(subtotal), 0) AS subtotal,
		       COALESCE(SUM(tax), 0) AS tax,
		       COALESCE(SUM(total), 0) AS total
		FROM orders
		WHERE status = ? AND DATE(created_at) = ? AND outlet_id = ?`,
		model.OrderCompleted, date, outletID).Scan(&summary).Error
	return summary, err
}

// WarmDailyReportCache recomputes today's summary and stores it in redis so
// the dashboard read path stays cheap. Stale-by-minutes is acceptable here.
func WarmDailyReportCache() {
	if database.Redis == nil {
		return
	}

	date := time.Now().Format("2006-01-02")
	summary, err := QueryDailySummary(date, constants.DefaultOutletID)
	if err != nil {
		log.Printf("daily report cache warm failed: %v", err)
		return
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		log.Printf("daily report cache marshal failed: %v", err)
		return
	}

	ctx := context.Background()
	if err := database.Redis.Set(ctx, DailyReportCacheKey(date, constants.DefaultOutletID), payload, dailyReportTTL).Err(); err != nil {
		log.Printf("daily report cache write failed: %v", err)
	}
}

// CachedDailySummary returns the warmed summary when present; a cache miss
// or redis outage falls through to nil and the caller queries directly.
func CachedDailySummary(date string, outletID uint) *model.SalesSummary {
	if database.Redis == nil {
		return nil
	}

	raw, err := database.Redis.Get(context.Background(), DailyReportCacheKey(date, outletID)).Bytes()
	if err != nil {
		return nil
	}

	var summary model.SalesSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil
	}
	return &summary
}

func StartReportScheduler() {
	reportCron = cron.New()
	if _, err := reportCron.AddFunc("@every 2m", WarmDailyReportCache); err != nil {
		log.Printf("report scheduler setup failed: %v", err)
		return
	}
	reportCron.Start()
}

func StopReportScheduler() {
	if reportCron != nil {
		reportCron.Stop()
	}
}
