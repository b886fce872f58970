package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"stocktrack/internal/config"
	"stocktrack/internal/db"
	"stocktrack/internal/model"
	"stocktrack/internal/repository"
)

type demoProduct struct {
	Name        string
	Quantity    int
	Price       string
	Description string
}

var demoProducts = []demoProduct{
	{"Widget", 3, "2.50", "Basic widget"},
	{"Gadget", 20, "9.99", "Multi-purpose gadget"},
	{"Sprocket", 45, "1.25", ""},
	{"Gizmo", 8, "14.00", "Limited run"},
	{"Doohickey", 120, "0.75", "Bulk item"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Product{}, &model.StockMovement{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	productRepo := repository.NewProductRepository(gormDB)
	ctx := context.Background()

	seeded := 0
	skipped := 0
	for _, item := range demoProducts {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			log.Printf("Skipping product %s with invalid price: %s", item.Name, item.Price)
			skipped++
			continue
		}

		product := &model.Product{
			Name:        item.Name,
			Quantity:    item.Quantity,
			Price:       price,
			Description: item.Description,
		}
		if err := productRepo.Create(ctx, product); err != nil {
			log.Fatalf("Failed to seed product %s: %v", item.Name, err)
		}
		seeded++
	}

	if skipped > 0 {
		log.Printf("Skipped %d invalid products", skipped)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Products created: %d", seeded)
}
