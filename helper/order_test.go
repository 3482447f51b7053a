package helper

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"pos_cafe/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeTotals(t *testing.T) {
	t.Run("single line with tax", func(t *testing.T) {
		totals := ComputeTotals([]model.CartItem{
			{ProductID: 1, Name: "Espresso", Price: dec("15000"), Qty: 2},
		}, dec("10"))

		assert.True(t, totals.Subtotal.Equal(dec("30000")), "subtotal %s", totals.Subtotal)
		assert.True(t, totals.Tax.Equal(dec("3000")), "tax %s", totals.Tax)
		assert.True(t, totals.Total.Equal(dec("33000")), "total %s", totals.Total)
	})

	t.Run("multiple lines", func(t *testing.T) {
		totals := ComputeTotals([]model.CartItem{
			{ProductID: 1, Name: "Espresso", Price: dec("15000"), Qty: 1},
			{ProductID: 2, Name: "Latte", Price: dec("22000"), Qty: 3},
		}, decimal.Zero)

		assert.True(t, totals.Subtotal.Equal(dec("81000")))
		assert.True(t, totals.Tax.IsZero())
		assert.True(t, totals.Total.Equal(dec("81000")))
	})

	t.Run("negative rate clamps to zero", func(t *testing.T) {
		totals := ComputeTotals([]model.CartItem{
			{ProductID: 1, Name: "Espresso", Price: dec("15000"), Qty: 1},
		}, dec("-5"))

		assert.True(t, totals.Tax.IsZero())
		assert.True(t, totals.Total.Equal(totals.Subtotal))
	})

	t.Run("fractional prices stay exact", func(t *testing.T) {
		totals := ComputeTotals([]model.CartItem{
			{ProductID: 1, Name: "Item", Price: dec("0.10"), Qty: 3},
		}, decimal.Zero)

		assert.Equal(t, "0.3", totals.Subtotal.String())
	})

	t.Run("empty cart", func(t *testing.T) {
		totals := ComputeTotals(nil, dec("10"))
		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.Total.IsZero())
	})
}

func TestMakeOrderNumber(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local)
	pattern := regexp.MustCompile(`^ORD-20260314-150926-(\d{3})$`)

	for i := 0; i < 50; i++ {
		number := MakeOrderNumber(now)
		match := pattern.FindStringSubmatch(number)
		require.NotNil(t, match, "order number %q", number)

		suffix, err := strconv.Atoi(match[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 100)
		assert.LessOrEqual(t, suffix, 999)
	}
}

func TestCurrentStockPolicy(t *testing.T) {
	t.Setenv("STOCK_POLICY", "")
	assert.Equal(t, StockClampZero, CurrentStockPolicy())

	t.Setenv("STOCK_POLICY", "reject")
	assert.Equal(t, StockReject, CurrentStockPolicy())

	t.Setenv("STOCK_POLICY", "nonsense")
	assert.Equal(t, StockClampZero, CurrentStockPolicy())
}

func TestBuildReceipt(t *testing.T) {
	size := "L"
	sugar := 50
	items := []model.CartItem{
		{
			ProductID: 1,
			Name:      "Cafe Latte",
			Price:     dec("22000"),
			Qty:       2,
			Options: model.CartItemOption{
				Size:       &size,
				SugarLevel: &sugar,
				Notes:      "less ice",
			},
		},
	}
	totals := ComputeTotals(items, dec("10"))
	settings := map[string]string{
		"store_name":    "POS Cafe",
		"store_address": "Jl. Kopi No. 1",
		"store_phone":   "0812-0000-0000",
	}
	createdAt := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	receipt := BuildReceipt(settings, "ORD-20260314-150926-123", createdAt, model.PaymentCash, totals, items)

	assert.Equal(t, "POS Cafe", receipt.StoreName)
	assert.Equal(t, "Jl. Kopi No. 1", receipt.StoreAddress)
	assert.Equal(t, "ORD-20260314-150926-123", receipt.OrderNumber)
	assert.Equal(t, createdAt, receipt.CreatedAt)
	assert.Equal(t, model.PaymentCash, receipt.PaymentMethod)
	assert.True(t, receipt.Total.Equal(dec("48400")))

	require.Len(t, receipt.Items, 1)
	line := receipt.Items[0]
	assert.Equal(t, "Cafe Latte", line.Name)
	assert.Equal(t, 2, line.Qty)
	require.NotNil(t, line.Size)
	assert.Equal(t, "L", *line.Size)
	require.NotNil(t, line.SugarLevel)
	assert.Equal(t, 50, *line.SugarLevel)
	assert.Equal(t, "less ice", line.Notes)
	assert.True(t, strings.HasPrefix(receipt.OrderNumber, "ORD-"))
}
