package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	DTO
	OutletID      uint            `json:"outletId"`
	Outlet        Outlet          `gorm:"foreignKey:OutletID" json:"outlet"`
	UserID        uint            `json:"userId"`
	User          User            `gorm:"foreignKey:UserID" json:"user"`
	OrderNumber   string          `gorm:"uniqueIndex;size:30;not null" json:"orderNumber"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Tax           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	PaymentMethod PaymentMethod   `gorm:"size:10;not null" json:"paymentMethod"`
	Status        OrderStatus     `gorm:"size:12;not null" json:"status"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

type Orders []Order

// OrderItem keeps name and price as snapshots of the moment of sale. They
// are never re-derived from the product row, which may be renamed or gone.
type OrderItem struct {
	DTO
	OrderID             uint            `json:"orderId"`
	ProductID           *uint           `json:"productId"`
	Product             *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
	ProductNameSnapshot string          `gorm:"not null" json:"productNameSnapshot"`
	Qty                 int             `gorm:"not null" json:"qty"`
	Size                *string         `gorm:"size:5" json:"size"`
	Mood                *string         `gorm:"size:10" json:"mood"`
	SugarLevel          *int            `json:"sugarLevel"`
	IceLevel            *int            `json:"iceLevel"`
	Price               decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Notes               *string         `json:"notes"`
}

type CartItemOption struct {
	Size       *string `json:"size"`
	Mood       *string `json:"mood"`
	SugarLevel *int    `json:"sugarLevel"`
	IceLevel   *int    `json:"iceLevel"`
	Notes      string  `json:"notes"`
}

// CartItem carries the client-submitted price snapshot. The catalog fetch
// happens moments before checkout and the price is trusted as submitted;
// this is a documented trust boundary, not an oversight.
type CartItem struct {
	ProductID uint            `json:"productId" validate:"required,gt=0"`
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty" validate:"required,gt=0"`
	Options   CartItemOption  `json:"options"`
}

type CreateOrderInput struct {
	OutletID      *uint            `json:"outletId"`
	PaymentMethod PaymentMethod    `json:"paymentMethod" validate:"required"`
	TaxRate       *decimal.Decimal `json:"taxRate"` // nil falls back to the outlet tax_rate setting
	Items         []CartItem       `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusInput struct {
	Status OrderStatus `json:"status" validate:"required"`
}

type FilterOrder struct {
	Pagination
	Status    *OrderStatus `json:"status" query:"status"`
	OutletID  *uint        `json:"outletId" query:"outletId"`
	StartDate string       `json:"startDate" query:"startDate"`
	EndDate   string       `json:"endDate" query:"endDate"`
}

type ReceiptItem struct {
	Name       string          `json:"name"`
	Qty        int             `json:"qty"`
	Price      decimal.Decimal `json:"price"`
	Size       *string         `json:"size,omitempty"`
	Mood       *string         `json:"mood,omitempty"`
	SugarLevel *int            `json:"sugarLevel,omitempty"`
	IceLevel   *int            `json:"iceLevel,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// Receipt is the print-ready projection returned by the order commit.
type Receipt struct {
	StoreName     string          `json:"storeName"`
	StoreAddress  string          `json:"storeAddress"`
	StorePhone    string          `json:"storePhone"`
	OrderNumber   string          `json:"orderNumber"`
	CreatedAt     time.Time       `json:"createdAt"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Items         []ReceiptItem   `json:"items"`
}
