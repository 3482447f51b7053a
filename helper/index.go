package helper

import (
	"errors"

	"pos_cafe/database"
	"pos_cafe/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func GetUserByEmail(email string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: email}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

var defaultSettings = map[string]string{
	"store_name":    "POS Cafe",
	"store_address": "-",
	"store_phone":   "-",
	"tax_rate":      "10",
	"receipt_paper": "80mm",
}

// GetSettings returns the outlet settings merged over defaults. This is a
// display read path, so a storage error degrades to the defaults.
func GetSettings(outletID uint) map[string]string {
	merged := make(map[string]string, len(defaultSettings))
	for key, value := range defaultSettings {
		merged[key] = value
	}

	var rows []model.Setting
	if err := database.DB.Where("outlet_id = ?", outletID).Find(&rows).Error; err != nil {
		return merged
	}
	for _, row := range rows {
		merged[row.SettingKey] = row.SettingValue
	}
	return merged
}

func GetTaxRate(outletID uint) decimal.Decimal {
	rate, err := decimal.NewFromString(GetSettings(outletID)["tax_rate"])
	if err != nil || rate.IsNegative() {
		return decimal.Zero
	}
	return rate
}
