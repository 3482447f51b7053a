package model

type Partner struct {
	DTO
	Name    string  `gorm:"not null" json:"name"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}

type PartnerInput struct {
	Name    string  `json:"name" validate:"required,min=1,max=100"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}
