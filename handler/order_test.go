package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"regexp"
	"testing"

	"pos_cafe/constants"
	"pos_cafe/database"
	"pos_cafe/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	old := database.DB
	database.DB = gormDB
	t.Cleanup(func() {
		database.DB = old
		sqlDB.Close()
	})
	return mock
}

func orderApp(input model.CreateOrderInput) *fiber.App {
	app := fiber.New()
	app.Post("/order", func(c *fiber.Ctx) error {
		c.Locals("userId", uint(7))
		c.Locals("input", input)
		return CreateOrder(c)
	})
	return app
}

func settingColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "outlet_id", "setting_key", "setting_value"})
}

func expectOrderLine(mock sqlmock.Sqlmock, id int64) {
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "product_stocks"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "product_stocks"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "stock_movements"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
}

// Each cart line must write its item snapshot, deduct its stock and append
// exactly one OUT ledger row, all inside one committed transaction. The
// ordered expectations fail on any extra or missing write.
func TestCreateOrderWritesOneMovementPerLine(t *testing.T) {
	mock := setupMockDB(t)

	taxRate := decimal.NewFromInt(10)
	input := model.CreateOrderInput{
		PaymentMethod: model.PaymentCash,
		TaxRate:       &taxRate,
		Items: []model.CartItem{
			{ProductID: 1, Name: "Espresso", Price: decimal.NewFromInt(15000), Qty: 2},
			{ProductID: 2, Name: "Cafe Latte", Price: decimal.NewFromInt(22000), Qty: 1},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	expectOrderLine(mock, 1)
	expectOrderLine(mock, 2)
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "settings"`)).
		WillReturnRows(settingColumns())

	resp, err := orderApp(input).Test(httptest.NewRequest("POST", "/order", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure while appending the ledger row must roll the whole order back:
// no commit, no further writes, a 500 to the caller.
func TestCreateOrderRollsBackOnLedgerFailure(t *testing.T) {
	mock := setupMockDB(t)

	taxRate := decimal.NewFromInt(10)
	input := model.CreateOrderInput{
		PaymentMethod: model.PaymentCash,
		TaxRate:       &taxRate,
		Items: []model.CartItem{
			{ProductID: 1, Name: "Espresso", Price: decimal.NewFromInt(15000), Qty: 1},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "product_stocks"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "product_stocks"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "stock_movements"`)).
		WillReturnError(errors.New("insert refused"))
	mock.ExpectRollback()

	resp, err := orderApp(input).Test(httptest.NewRequest("POST", "/order", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), constants.ORDER_CREATE_FAILED)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An omitted taxRate falls back to the outlet's tax_rate setting.
func TestCreateOrderDefaultsTaxRateFromSettings(t *testing.T) {
	mock := setupMockDB(t)

	input := model.CreateOrderInput{
		PaymentMethod: model.PaymentCash,
		Items: []model.CartItem{
			{ProductID: 1, Name: "Espresso", Price: decimal.NewFromInt(15000), Qty: 1},
		},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "settings"`)).
		WillReturnRows(settingColumns().AddRow(1, 1, "tax_rate", "10"))
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	expectOrderLine(mock, 1)
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "settings"`)).
		WillReturnRows(settingColumns().AddRow(1, 1, "tax_rate", "10"))

	resp, err := orderApp(input).Test(httptest.NewRequest("POST", "/order", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data struct {
			Subtotal decimal.Decimal `json:"subtotal"`
			Tax      decimal.Decimal `json:"tax"`
			Total    decimal.Decimal `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Data.Subtotal.Equal(decimal.NewFromInt(15000)), "subtotal %s", envelope.Data.Subtotal)
	assert.True(t, envelope.Data.Tax.Equal(decimal.NewFromInt(1500)), "tax %s", envelope.Data.Tax)
	assert.True(t, envelope.Data.Total.Equal(decimal.NewFromInt(16500)), "total %s", envelope.Data.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
