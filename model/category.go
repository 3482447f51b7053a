package model

type Category struct {
	DTO
	Name      string  `gorm:"not null" json:"name"`
	Icon      *string `json:"icon"`
	SortOrder int     `gorm:"default:0" json:"sortOrder"`
}

type CategoryInput struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	Icon      *string `json:"icon"`
	SortOrder int     `json:"sortOrder"`
}
