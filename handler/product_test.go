package handler

import (
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The product listing joins categories, which also has a name column, so
// the search predicate has to qualify products.name / products.description
// or Postgres rejects the statement as ambiguous.
func TestGetProductsSearchUsesQualifiedColumns(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE \(?products\.name ILIKE \$1 OR products\.description ILIKE \$2\)?`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT products\.\* FROM "products" LEFT JOIN categories ON categories\.id = products\.category_id WHERE \(?products\.name ILIKE \$1 OR products\.description ILIKE \$2\)?`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "name", "slug", "description", "price", "image_url", "is_available"}))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product_stocks"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "outlet_id", "stock_qty", "min_stock"}))

	app := fiber.New()
	app.Get("/product", GetProducts)

	resp, err := app.Test(httptest.NewRequest("GET", "/product?searchKey=latte", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
