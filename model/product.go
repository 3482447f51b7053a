package model

import "github.com/shopspring/decimal"

type Product struct {
	DTO
	CategoryID  uint            `json:"categoryId"`
	Category    Category        `gorm:"foreignKey:CategoryID" json:"category"`
	Name        string          `gorm:"not null" json:"name"`
	Slug        string          `gorm:"uniqueIndex;size:150" json:"slug"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	ImageUrl    *string         `json:"imageUrl"`
	IsAvailable bool            `gorm:"not null;default:true" json:"isAvailable"`
}

type Products []Product

type ProductInput struct {
	CategoryID  uint            `json:"categoryId" validate:"required,gt=0"`
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageUrl    *string         `json:"imageUrl"`
	IsAvailable *bool           `json:"isAvailable"`
	StockQty    int             `json:"stockQty"`
	MinStock    int             `json:"minStock"`
	OutletID    *uint           `json:"outletId"`
}

type FilterProduct struct {
	Pagination
	CategoryID    *uint  `json:"categoryId" query:"categoryId"`
	OutletID      *uint  `json:"outletId" query:"outletId"`
	SearchKey     string `json:"searchKey" query:"searchKey"`
	OnlyAvailable bool   `json:"onlyAvailable" query:"onlyAvailable"`
}

// ProductStock is the per-(product, outlet) counter. StockQty never goes
// below zero; deductions are clamped in a single atomic UPDATE.
type ProductStock struct {
	DTO
	ProductID uint `gorm:"uniqueIndex:idx_product_outlet" json:"productId"`
	OutletID  uint `gorm:"uniqueIndex:idx_product_outlet" json:"outletId"`
	StockQty  int  `gorm:"not null;default:0" json:"stockQty"`
	MinStock  int  `gorm:"not null;default:0" json:"minStock"`
}
