package model

type Outlet struct {
	DTO
	Name    string  `gorm:"not null" json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type CreateOutletInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
