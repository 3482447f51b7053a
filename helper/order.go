package helper

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"pos_cafe/config"
	"pos_cafe/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// ComputeTotals sums the cart exactly. A negative tax rate is clamped to
// zero; tax is a snapshot of subtotal * rate / 100 at commit time.
func ComputeTotals(items []model.CartItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}

	if taxRate.IsNegative() {
		taxRate = decimal.Zero
	}
	tax := subtotal.Mul(taxRate).Div(oneHundred)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// MakeOrderNumber builds ORD-YYYYMMDD-HHMMSS-RND. The 3-digit suffix only
// disambiguates within a second probabilistically; the unique index on
// order_number turns a collision into a rolled-back transaction.
func MakeOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%s-%d", now.Format("20060102"), now.Format("150405"), 100+rand.Intn(900))
}

type StockPolicy string

const (
	// StockClampZero deducts best effort, flooring the counter at zero.
	StockClampZero StockPolicy = "clamp"
	// StockReject aborts the whole order when stock is insufficient.
	StockReject StockPolicy = "reject"
)

func CurrentStockPolicy() StockPolicy {
	if StockPolicy(config.Config("STOCK_POLICY")) == StockReject {
		return StockReject
	}
	return StockClampZero
}

var ErrInsufficientStock = errors.New("insufficient stock")

// DeductStock decrements the (product, outlet) counter inside tx as a single
// atomic UPDATE; there is no read-then-write on the counter anywhere.
func DeductStock(tx *gorm.DB, policy StockPolicy, productID, outletID uint, qty int) error {
	if policy == StockReject {
		res := tx.Model(&model.ProductStock{}).
			Where("product_id = ? AND outlet_id = ? AND stock_qty >= ?", productID, outletID, qty).
			Update("stock_qty", gorm.Expr("stock_qty - ?", qty))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}
		return nil
	}

	return tx.Model(&model.ProductStock{}).
		Where("product_id = ? AND outlet_id = ?", productID, outletID).
		Update("stock_qty", gorm.Expr("GREATEST(stock_qty - ?, 0)", qty)).Error
}

// BuildReceipt projects the committed order for printing. Lines come from
// the cart as submitted; store info is display data read outside the
// transaction.
func BuildReceipt(settings map[string]string, orderNumber string, createdAt time.Time, method model.PaymentMethod, totals Totals, items []model.CartItem) model.Receipt {
	receipt := model.Receipt{
		StoreName:     settings["store_name"],
		StoreAddress:  settings["store_address"],
		StorePhone:    settings["store_phone"],
		OrderNumber:   orderNumber,
		CreatedAt:     createdAt,
		PaymentMethod: method,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
	}

	for _, item := range items {
		receipt.Items = append(receipt.Items, model.ReceiptItem{
			Name:       item.Name,
			Qty:        item.Qty,
			Price:      item.Price,
			Size:       item.Options.Size,
			Mood:       item.Options.Mood,
			SugarLevel: item.Options.SugarLevel,
			IceLevel:   item.Options.IceLevel,
			Notes:      item.Options.Notes,
		})
	}

	return receipt
}
