package database

import (
	"storefront-backend/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.Product{},
		&models.Review{},
	)
}

// curatedProducts is the catalog seeded into an empty database.
var curatedProducts = []models.Product{
	{SKU: "UN-100", Title: "CAP", Slug: "cap", Price: 35.0, Description: "Breathable mesh cap with tonal embroidery.", ImageURL: "/images/products/triangle-cap.jpg", Color: "Black", Category: "Accessories", Stock: 100},
	{SKU: "UN-200", Title: "SWEATS", Slug: "sweats", Price: 65.0, Description: "Relaxed fit heavyweight sweats with minimal branding.", ImageURL: "/images/products/gray-hoodie.jpg", Color: "Gray", Category: "Bottoms", Stock: 100},
	{SKU: "UN-300", Title: "ARMLESS", Slug: "armless", Price: 30.0, Description: "Sleeveless tank with clean neckline and premium cotton.", ImageURL: "/images/products/white-hoodie.jpg", Color: "White", Category: "Tops", Stock: 100},
	{SKU: "UN-400B", Title: "TEE — BLACK", Slug: "tee-black", Price: 40.0, Description: "Essential black tee in heavyweight jersey.", ImageURL: "/images/products/black-tee.jpg", Color: "Black", Category: "T-Shirts", Stock: 100},
	{SKU: "UN-400W", Title: "TEE — WHITE", Slug: "tee-white", Price: 40.0, Description: "Essential white tee in heavyweight jersey.", ImageURL: "/images/products/square-tee.jpg", Color: "White", Category: "T-Shirts", Stock: 100},
	{SKU: "UN-500", Title: "CROP TOP", Slug: "crop-top", Price: 32.0, Description: "Cropped top with tight rib and clean finish.", ImageURL: "/images/products/circle-hoodie.jpg", Color: "Black", Category: "Tops", Stock: 100},
}

// SeedProducts inserts the curated catalog when the products table is
// empty. Idempotent across restarts.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&curatedProducts).Error
}
