package model

type Setting struct {
	DTO
	OutletID     uint   `gorm:"uniqueIndex:idx_outlet_key" json:"outletId"`
	SettingKey   string `gorm:"uniqueIndex:idx_outlet_key;size:50" json:"settingKey"`
	SettingValue string `json:"settingValue"`
}

type SettingInput struct {
	OutletID *uint  `json:"outletId"`
	Key      string `json:"key" validate:"required,min=1,max=50"`
	Value    string `json:"value"`
}
