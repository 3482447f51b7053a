package model

import "github.com/shopspring/decimal"

type SalesSummary struct {
	Period      string          `json:"period"`
	TotalOrders int64           `json:"totalOrders"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

type CategoryRevenue struct {
	CategoryID   uint            `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Revenue      decimal.Decimal `json:"revenue"`
	TotalQty     int64           `json:"totalQty"`
}

type TopProduct struct {
	ProductID    uint            `json:"productId"`
	ProductName  string          `json:"productName"`
	TotalQty     int64           `json:"totalQty"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

type LowStockRow struct {
	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`
	OutletID    uint   `json:"outletId"`
	StockQty    int    `json:"stockQty"`
	MinStock    int    `json:"minStock"`
}
