package helper

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"pos_cafe/config"
	"pos_cafe/constants"
	"pos_cafe/database"
	"pos_cafe/model"

	"github.com/go-co-op/gocron/v2"
	"gopkg.in/gomail.v2"
)

var stockScheduler gocron.Scheduler

func QueryLowStock(outletID uint) ([]model.LowStockRow, error) {
	var rows []model.LowStockRow
	err := database.DB.Raw(`
		SELECT ps.product_id, p.name AS product_name, ps.outlet_id, ps.stock_qty, ps.min_stock
		FROM product_stocks ps
		INNER JOIN products p ON p.id = ps.product_id
		WHERE ps.outlet_id = ? AND ps.stock_qty <= ps.min_stock
		ORDER BY p.name ASC`, outletID).Scan(&rows).Error
	return rows, err
}

// SweepLowStock mails the low-stock list to the store owner. Skips quietly when SMTP
// is not configured, which is the common case for a single-terminal setup.
func SweepLowStock() {
	rows, err := QueryLowStock(constants.DefaultOutletID)
	if err != nil {
		log.Printf("low stock sweep failed: %v", err)
		return
	}
	if len(rows) == 0 {
		return
	}

	host := config.Config("SMTP_HOST")
	to := config.Config("STOCK_ALERT_EMAIL")
	if host == "" || to == "" {
		log.Printf("low stock: %d product(s) at or below minimum, mail not configured", len(rows))
		return
	}

	var body strings.Builder
	body.WriteString("<h3>Low stock report</h3><ul>")
	for _, row := range rows {
		body.WriteString(fmt.Sprintf("<li>%s: %d left (minimum %d)</li>", row.ProductName, row.StockQty, row.MinStock))
	}
	body.WriteString("</ul>")

	port, _ := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))

	m := gomail.NewMessage()
	m.SetHeader("From", config.ConfigDefault("SMTP_FROM", "pos@localhost"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Low stock: %d product(s) need restocking", len(rows)))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(host, port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("low stock mail failed: %v", err)
	}
}

func StartStockScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("stock scheduler init failed: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(7, 0, 0),
			),
		),
		gocron.NewTask(SweepLowStock),
	)
	if err != nil {
		log.Printf("stock scheduler job failed: %v", err)
		return
	}

	stockScheduler = s
	s.Start()
}

func StopStockScheduler() {
	if stockScheduler != nil {
		_ = stockScheduler.Shutdown()
	}
}
