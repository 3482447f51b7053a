package model

// StockMovement is an append-only ledger row. Every change to a
// ProductStock quantity writes exactly one of these; rows are never updated.
type StockMovement struct {
	DTO
	ProductID uint         `json:"productId"`
	Product   Product      `gorm:"foreignKey:ProductID" json:"product"`
	OutletID  uint         `json:"outletId"`
	Outlet    Outlet       `gorm:"foreignKey:OutletID" json:"outlet"`
	Type      MovementType `gorm:"size:12;not null" json:"type"`
	Qty       int          `gorm:"not null" json:"qty"`
	Note      *string      `json:"note"`
}

type StockUpdateInput struct {
	ProductID uint   `json:"productId" validate:"required,gt=0"`
	OutletID  *uint  `json:"outletId"`
	StockQty  int    `json:"stockQty"`
	MinStock  int    `json:"minStock"`
	Note      string `json:"note"`
}

type StockMovementInput struct {
	ProductID uint         `json:"productId" validate:"required,gt=0"`
	OutletID  *uint        `json:"outletId"`
	Type      MovementType `json:"type" validate:"required"`
	Qty       int          `json:"qty"`
	Note      string       `json:"note"`
}
