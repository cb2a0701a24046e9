package main

import (
	"fmt"
	"log"

	"github.com/localnerve/gestorinmo/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	// Auto-migrate to see what GORM creates for the documents JSON columns
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	tables, err := db.Migrator().GetTables()
	if err != nil {
		log.Fatal(err)
	}

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var schema string
		db.Raw("SELECT sql FROM sqlite_master WHERE name = ?", table).Scan(&schema)
		fmt.Println(schema)

		columns, err := db.Migrator().ColumnTypes(table)
		if err != nil {
			log.Fatal(err)
		}
		for _, col := range columns {
			nullable, _ := col.Nullable()
			fmt.Printf("  %-22s %-14s nullable=%v\n", col.Name(), col.DatabaseTypeName(), nullable)
		}
	}
}
