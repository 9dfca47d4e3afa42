package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/laptopfinder/backend/internal/domain"
)

const laptopsSchema = `
CREATE TABLE IF NOT EXISTS laptops (
	id                 TEXT PRIMARY KEY,
	brand              TEXT NOT NULL,
	name               TEXT NOT NULL,
	price              REAL NOT NULL,
	processor          TEXT NOT NULL,
	ram_gb             INTEGER NOT NULL,
	storage_gb         INTEGER NOT NULL,
	gpu                TEXT,
	display            TEXT,
	battery_life_hours REAL,
	weight_kg          REAL,
	os                 TEXT
);`

// SQLiteSource loads the catalog from the laptops table of a SQLite database.
// Catalog order is insertion order (rowid).
type SQLiteSource struct {
	path string
}

// NewSQLiteSource creates a source for the given database file
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

// Load reads every row of the laptops table
func (s *SQLiteSource) Load(ctx context.Context) ([]domain.Product, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrCatalogUnavailable, s.path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, brand, name, price, processor, ram_gb, storage_gb,
		       gpu, display, battery_life_hours, weight_kg, os
		FROM laptops ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: query laptops: %v", domain.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var (
			p                    domain.Product
			gpu, display, osName sql.NullString
			battery, weight      sql.NullFloat64
		)
		if err := rows.Scan(&p.ID, &p.Brand, &p.Name, &p.Price, &p.Processor, &p.RAMGB, &p.StorageGB,
			&gpu, &display, &battery, &weight, &osName); err != nil {
			return nil, fmt.Errorf("%w: scan laptop: %v", domain.ErrCatalogUnavailable, err)
		}
		p.GPU = nullString(gpu)
		p.Display = nullString(display)
		p.OS = nullString(osName)
		p.BatteryLifeHours = nullFloat(battery)
		p.WeightKG = nullFloat(weight)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate laptops: %v", domain.ErrCatalogUnavailable, err)
	}

	return products, nil
}

// ImportProducts creates the laptops table if needed and upserts products in order.
func ImportProducts(ctx context.Context, path string, products []domain.Product) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, laptopsSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO laptops (id, brand, name, price, processor, ram_gb, storage_gb,
		                     gpu, display, battery_life_hours, weight_kg, os)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			brand = excluded.brand, name = excluded.name, price = excluded.price,
			processor = excluded.processor, ram_gb = excluded.ram_gb,
			storage_gb = excluded.storage_gb, gpu = excluded.gpu,
			display = excluded.display, battery_life_hours = excluded.battery_life_hours,
			weight_kg = excluded.weight_kg, os = excluded.os`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Brand, p.Name, p.Price, p.Processor, p.RAMGB, p.StorageGB,
			p.GPU, p.Display, p.BatteryLifeHours, p.WeightKG, p.OS); err != nil {
			return fmt.Errorf("insert %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
