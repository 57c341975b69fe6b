// cmd/seed/main.go — seeds the reference categories and types the API
// assumes to exist. Safe to re-run.
// Usage: go run cmd/seed/main.go
package main

import (
	"fmt"
	"log"

	"github.com/SyaefulAxl/meliyah-backend/internal/config"
	"github.com/SyaefulAxl/meliyah-backend/internal/infra"
)

var categories = []struct {
	id   int64
	name string
}{
	{1, "Food"},
	{2, "Beverage"},
	{3, "Household"},
}

var types = []struct {
	id         int64
	name       string
	categoryID int64
}{
	{1, "Fresh Produce", 1},
	{2, "Frozen", 1},
	{3, "Dry Goods", 1},
	{4, "Juice", 2},
	{5, "Dairy Drink", 2},
	{6, "Cleaning", 3},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DSN())
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	defer db.Close()

	for _, c := range categories {
		_, err := db.Exec(`
			INSERT INTO categories (category_id, category_name)
			VALUES (?, ?)
			ON DUPLICATE KEY UPDATE category_name = VALUES(category_name)
		`, c.id, c.name)
		if err != nil {
			log.Fatalf("seed category %q: %v", c.name, err)
		}
	}

	for _, t := range types {
		_, err := db.Exec(`
			INSERT INTO types (type_id, type_name, category_id)
			VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE type_name = VALUES(type_name), category_id = VALUES(category_id)
		`, t.id, t.name, t.categoryID)
		if err != nil {
			log.Fatalf("seed type %q: %v", t.name, err)
		}
	}

	fmt.Printf("seeded %d categories and %d types\n", len(categories), len(types))
}
