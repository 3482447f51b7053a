package database

import (
	"fmt"
	"strconv"

	"pos_cafe/config"
	"pos_cafe/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigDefault("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.ConfigDefault("DB_HOST", "127.0.0.1"), port,
		config.ConfigDefault("DB_USER", "postgres"),
		config.Config("DB_PASSWORD"),
		config.ConfigDefault("DB_NAME", "pos_kasir_cafe"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Outlet{},
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.ProductStock{},
		&model.StockMovement{},
		&model.Order{},
		&model.OrderItem{},
		&model.Setting{},
		&model.Partner{},
	)
	fmt.Println("Database Migrated")

	SeedData(DB)
}

func CloseDB() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.Close()
	}
}
