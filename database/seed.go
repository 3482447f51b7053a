package database

import (
	"log"

	"pos_cafe/constants"
	"pos_cafe/model"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedData fills an empty database with a working outlet, two accounts and
// a small menu. Every row goes through FirstOrCreate so re-running the
// server never duplicates anything.
//
// Seed passwords are stored plaintext on purpose: the first login rewrites
// them through the scrypt migration path.
func SeedData(db *gorm.DB) {
	outlet := model.Outlet{Name: "Main Outlet"}
	if err := db.Where("id = ?", constants.DefaultOutletID).
		Attrs(model.Outlet{DTO: model.DTO{ID: constants.DefaultOutletID}, Name: "Main Outlet"}).
		FirstOrCreate(&outlet).Error; err != nil {
		log.Printf("seed outlet failed: %v", err)
		return
	}

	users := []model.User{
		{OutletID: outlet.ID, Name: "Admin", Email: "admin@cafe.local", Password: "admin123", Role: constants.ROLE_ADMIN},
		{OutletID: outlet.ID, Name: "Kasir", Email: "kasir@cafe.local", Password: "kasir123", Role: constants.ROLE_CASHIER},
	}
	for _, user := range users {
		if err := db.Where("email = ?", user.Email).Attrs(user).FirstOrCreate(&model.User{}).Error; err != nil {
			log.Printf("seed user %s failed: %v", user.Email, err)
		}
	}

	categories := []model.Category{
		{Name: "Coffee", SortOrder: 1},
		{Name: "Non-Coffee", SortOrder: 2},
		{Name: "Snack", SortOrder: 3},
		{Name: "Main Course", SortOrder: 4},
	}
	categoryByName := map[string]uint{}
	for i := range categories {
		var row model.Category
		if err := db.Where("name = ?", categories[i].Name).Attrs(categories[i]).FirstOrCreate(&row).Error; err != nil {
			log.Printf("seed category %s failed: %v", categories[i].Name, err)
			continue
		}
		categoryByName[row.Name] = row.ID
	}

	menu := []struct {
		Category string
		Name     string
		Price    string
		Stock    int
		MinStock int
	}{
		{"Coffee", "Espresso", "15000", 100, 10},
		{"Coffee", "Cafe Latte", "22000", 100, 10},
		{"Coffee", "Cappuccino", "22000", 100, 10},
		{"Non-Coffee", "Matcha Latte", "25000", 80, 10},
		{"Non-Coffee", "Lemon Tea", "15000", 80, 10},
		{"Snack", "French Fries", "18000", 50, 5},
		{"Main Course", "Nasi Goreng", "28000", 40, 5},
	}
	for _, item := range menu {
		categoryID, ok := categoryByName[item.Category]
		if !ok {
			continue
		}
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			continue
		}

		var product model.Product
		if err := db.Where("name = ?", item.Name).Attrs(model.Product{
			CategoryID: categoryID,
			Name:       item.Name,
			Slug:       slug.Make(item.Name),
			Price:      price,
		}).FirstOrCreate(&product).Error; err != nil {
			log.Printf("seed product %s failed: %v", item.Name, err)
			continue
		}

		if err := db.Where("product_id = ? AND outlet_id = ?", product.ID, outlet.ID).
			Attrs(model.ProductStock{
				ProductID: product.ID,
				OutletID:  outlet.ID,
				StockQty:  item.Stock,
				MinStock:  item.MinStock,
			}).FirstOrCreate(&model.ProductStock{}).Error; err != nil {
			log.Printf("seed stock %s failed: %v", item.Name, err)
		}
	}

	settings := map[string]string{
		constants.SETTING_STORE_NAME:    "POS Cafe",
		constants.SETTING_STORE_ADDRESS: "Jl. Kopi No. 1",
		constants.SETTING_STORE_PHONE:   "0812-0000-0000",
		constants.SETTING_TAX_RATE:      "10",
		constants.SETTING_RECEIPT_PAPER: "80mm",
	}
	for key, value := range settings {
		if err := db.Where("outlet_id = ? AND setting_key = ?", outlet.ID, key).
			Attrs(model.Setting{OutletID: outlet.ID, SettingKey: key, SettingValue: value}).
			FirstOrCreate(&model.Setting{}).Error; err != nil {
			log.Printf("seed setting %s failed: %v", key, err)
		}
	}
}
