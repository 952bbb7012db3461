package database

import (
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/alihanerman/ai-product-explorer/internal/models"
)

// Demo image assets grouped by category, Apple gets its own artwork.
var seedImages = map[models.ProductCategory]map[string]string{
	models.CategoryPhone: {
		"Apple":   "https://njzwljh5hbgbdvlu.public.blob.vercel-storage.com/iphone.webp",
		"default": "https://njzwljh5hbgbdvlu.public.blob.vercel-storage.com/android.webp",
	},
	models.CategoryTablet: {
		"Apple":   "https://njzwljh5hbgbdvlu.public.blob.vercel-storage.com/ipad.webp",
		"default": "https://njzwljh5hbgbdvlu.public.blob.vercel-storage.com/androidTab.webp",
	},
	models.CategoryLaptop: {
		"Apple":   "https://njzwljh5hbgbdvlu.public.blob.vercel-storage.com/macair.webp",
		"default": "https://njzwljh5hbgbdvlu.public.blob.vercel-storage.com/thinkpad.webp",
	},
	models.CategoryDesktop: {
		"Apple":   "https://njzwljh5hbgbdvlu.public.blob.vercel-storage.com/imac.webp",
		"default": "https://njzwljh5hbgbdvlu.public.blob.vercel-storage.com/desktop.webp",
	},
}

func seedImageFor(category models.ProductCategory, brand string) string {
	byBrand, ok := seedImages[category]
	if !ok {
		return ""
	}
	if url, ok := byBrand[brand]; ok {
		return url
	}
	return byBrand["default"]
}

// SeedInitialData populates the demo accounts and the product catalog.
// It is idempotent: each table is only filled when it is empty.
func SeedInitialData(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	return seedProducts(db)
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := models.User{Email: "test@example.com", Name: "Test User"}
	if err := demo.SetPassword("password123"); err != nil {
		return err
	}
	if err := db.Create(&demo).Error; err != nil {
		return err
	}

	admin := models.User{Email: "admin@example.com", Name: "Admin", IsAdmin: true}
	if err := admin.SetPassword("admin123"); err != nil {
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Seeded demo users: test@example.com, admin@example.com")
	return nil
}

func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := catalogProducts()
	for i := range products {
		products[i].ImageURL = seedImageFor(products[i].Category, products[i].Brand)
	}
	if err := db.CreateInBatches(products, 50).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d catalog products", len(products))
	return nil
}

func catalogProducts() []models.Product {
	return []models.Product{
		{Name: "iPhone 15 Pro", Category: models.CategoryPhone, Brand: "Apple", Price: 1299.99, Rating: 4.8, CPU: "A17 Pro", RAMGB: 8, StorageGB: 256, ScreenInch: 6.1, WeightKG: 0.187, BatteryWh: 15},
		{Name: "iPhone 15", Category: models.CategoryPhone, Brand: "Apple", Price: 899.00, Rating: 4.6, CPU: "A16 Bionic", RAMGB: 6, StorageGB: 128, ScreenInch: 6.1, WeightKG: 0.171, BatteryWh: 14},
		{Name: "iPhone SE", Category: models.CategoryPhone, Brand: "Apple", Price: 429.00, Rating: 4.4, CPU: "A15 Bionic", RAMGB: 4, StorageGB: 64, ScreenInch: 4.7, WeightKG: 0.144, BatteryWh: 8},
		{Name: `iPad Pro 12.9"`, Category: models.CategoryTablet, Brand: "Apple", Price: 1099.00, Rating: 4.9, CPU: "M2", RAMGB: 8, StorageGB: 256, ScreenInch: 12.9, WeightKG: 0.682, BatteryWh: 40},
		{Name: "iPad Air", Category: models.CategoryTablet, Brand: "Apple", Price: 599.00, Rating: 4.7, CPU: "M1", RAMGB: 8, StorageGB: 64, ScreenInch: 10.9, WeightKG: 0.462, BatteryWh: 28},
		{Name: `MacBook Air 15"`, Category: models.CategoryLaptop, Brand: "Apple", Price: 1299.00, Rating: 4.8, CPU: "M2", RAMGB: 8, StorageGB: 256, ScreenInch: 15.3, WeightKG: 1.51, BatteryWh: 66},
		{Name: `MacBook Pro 14"`, Category: models.CategoryLaptop, Brand: "Apple", Price: 1999.00, Rating: 4.9, CPU: "M3 Pro", RAMGB: 18, StorageGB: 512, ScreenInch: 14.2, WeightKG: 1.6, BatteryWh: 70},
		{Name: `MacBook Pro 16"`, Category: models.CategoryLaptop, Brand: "Apple", Price: 2499.00, Rating: 4.9, CPU: "M3 Max", RAMGB: 36, StorageGB: 1024, ScreenInch: 16.2, WeightKG: 2.15, BatteryWh: 100},
		{Name: `iMac 24"`, Category: models.CategoryDesktop, Brand: "Apple", Price: 1499.00, Rating: 4.7, CPU: "M3", RAMGB: 8, StorageGB: 512, ScreenInch: 24, WeightKG: 4.48, BatteryWh: 0},
		{Name: "Mac mini", Category: models.CategoryDesktop, Brand: "Apple", Price: 599.00, Rating: 4.8, CPU: "M2", RAMGB: 8, StorageGB: 256, ScreenInch: 0, WeightKG: 1.18, BatteryWh: 0},
		{Name: "Samsung Galaxy S24 Ultra", Category: models.CategoryPhone, Brand: "Samsung", Price: 1199.99, Rating: 4.7, CPU: "Snapdragon 8 Gen 3", RAMGB: 12, StorageGB: 512, ScreenInch: 6.8, WeightKG: 0.232, BatteryWh: 19},
		{Name: "Samsung Galaxy Z Fold 5", Category: models.CategoryPhone, Brand: "Samsung", Price: 1799.00, Rating: 4.5, CPU: "Snapdragon 8 Gen 2", RAMGB: 12, StorageGB: 512, ScreenInch: 7.6, WeightKG: 0.253, BatteryWh: 17},
		{Name: "Samsung Galaxy A54", Category: models.CategoryPhone, Brand: "Samsung", Price: 449.99, Rating: 4.3, CPU: "Exynos 1380", RAMGB: 8, StorageGB: 128, ScreenInch: 6.4, WeightKG: 0.202, BatteryWh: 19},
		{Name: "Samsung Galaxy Tab S9", Category: models.CategoryTablet, Brand: "Samsung", Price: 799.00, Rating: 4.6, CPU: "Snapdragon 8 Gen 2", RAMGB: 8, StorageGB: 128, ScreenInch: 11, WeightKG: 0.498, BatteryWh: 32},
		{Name: "Google Pixel 8 Pro", Category: models.CategoryPhone, Brand: "Google", Price: 999.00, Rating: 4.6, CPU: "Google Tensor G3", RAMGB: 12, StorageGB: 256, ScreenInch: 6.7, WeightKG: 0.213, BatteryWh: 18},
		{Name: "Google Pixel Tablet", Category: models.CategoryTablet, Brand: "Google", Price: 499.00, Rating: 4.2, CPU: "Google Tensor G2", RAMGB: 8, StorageGB: 128, ScreenInch: 10.95, WeightKG: 0.493, BatteryWh: 27},
		{Name: "OnePlus 12", Category: models.CategoryPhone, Brand: "OnePlus", Price: 799.00, Rating: 4.5, CPU: "Snapdragon 8 Gen 3", RAMGB: 16, StorageGB: 512, ScreenInch: 6.82, WeightKG: 0.22, BatteryWh: 20},
		{Name: "Xiaomi 14 Ultra", Category: models.CategoryPhone, Brand: "Xiaomi", Price: 1150.00, Rating: 4.7, CPU: "Snapdragon 8 Gen 3", RAMGB: 16, StorageGB: 512, ScreenInch: 6.73, WeightKG: 0.224, BatteryWh: 19},
		{Name: "Dell XPS 15", Category: models.CategoryLaptop, Brand: "Dell", Price: 2199.00, Rating: 4.7, CPU: "Intel Core i9-13900H", RAMGB: 32, StorageGB: 1024, ScreenInch: 15.6, WeightKG: 1.92, BatteryWh: 86},
		{Name: "Lenovo ThinkPad X1 Carbon Gen 11", Category: models.CategoryLaptop, Brand: "Lenovo", Price: 1599.50, Rating: 4.8, CPU: "Intel Core i7-1355U", RAMGB: 16, StorageGB: 512, ScreenInch: 14, WeightKG: 1.12, BatteryWh: 57, Tags: pq.StringArray{"business", "ultraportable"}},
		{Name: "Lenovo Yoga 9i", Category: models.CategoryLaptop, Brand: "Lenovo", Price: 1399.00, Rating: 4.6, CPU: "Intel Core i7-1360P", RAMGB: 16, StorageGB: 1024, ScreenInch: 14, WeightKG: 1.4, BatteryWh: 75},
		{Name: "Lenovo Tab P12", Category: models.CategoryTablet, Brand: "Lenovo", Price: 349.99, Rating: 4.4, CPU: "MediaTek Dimensity 7050", RAMGB: 8, StorageGB: 128, ScreenInch: 12.7, WeightKG: 0.615, BatteryWh: 39},
		{Name: "HP Spectre x360", Category: models.CategoryLaptop, Brand: "HP", Price: 1249.99, Rating: 4.5, CPU: "Intel Core i7-1355U", RAMGB: 16, StorageGB: 512, ScreenInch: 13.5, WeightKG: 1.36, BatteryWh: 66},
		{Name: "Asus ROG Zephyrus G14", Category: models.CategoryLaptop, Brand: "Asus", Price: 1899.00, Rating: 4.6, CPU: "AMD Ryzen 9 7940HS", RAMGB: 16, StorageGB: 1024, ScreenInch: 14, WeightKG: 1.72, BatteryWh: 76, Tags: pq.StringArray{"gaming", "performance"}},
		{Name: "Microsoft Surface Laptop 5", Category: models.CategoryLaptop, Brand: "Microsoft", Price: 1199.00, Rating: 4.3, CPU: "Intel Core i5-1235U", RAMGB: 8, StorageGB: 512, ScreenInch: 13.5, WeightKG: 1.27, BatteryWh: 47},
		{Name: "Microsoft Surface Pro 9", Category: models.CategoryTablet, Brand: "Microsoft", Price: 999.00, Rating: 4.5, CPU: "Intel Core i5-1235U", RAMGB: 8, StorageGB: 256, ScreenInch: 13, WeightKG: 0.879, BatteryWh: 47},
		{Name: "Razer Blade 16", Category: models.CategoryLaptop, Brand: "Razer", Price: 2699.99, Rating: 4.6, CPU: "Intel Core i9-13950HX", RAMGB: 32, StorageGB: 2048, ScreenInch: 16, WeightKG: 2.45, BatteryWh: 95, Tags: pq.StringArray{"gaming", "creator"}},
		{Name: "HP Pavilion Gaming Desktop", Category: models.CategoryDesktop, Brand: "HP", Price: 999.99, Rating: 4.4, CPU: "AMD Ryzen 7 5700G", RAMGB: 16, StorageGB: 1024, ScreenInch: 0, WeightKG: 8.5, BatteryWh: 0},
		{Name: "Dell Inspiron 27 AiO", Category: models.CategoryDesktop, Brand: "Dell", Price: 1199.00, Rating: 4.5, CPU: "Intel Core i7-1355U", RAMGB: 16, StorageGB: 512, ScreenInch: 27, WeightKG: 7.2, BatteryWh: 0},
		{Name: "Alienware Aurora R15", Category: models.CategoryDesktop, Brand: "Dell", Price: 2899.99, Rating: 4.7, CPU: "Intel Core i9-13900KF", RAMGB: 32, StorageGB: 2048, ScreenInch: 0, WeightKG: 16.5, BatteryWh: 0},
		{Name: "Acer Predator Orion 3000", Category: models.CategoryDesktop, Brand: "Acer", Price: 1499.99, Rating: 4.5, CPU: "Intel Core i7-12700F", RAMGB: 16, StorageGB: 1024, ScreenInch: 0, WeightKG: 9.8, BatteryWh: 0},
	}
}
