package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/LBHackney-IT/mtfh-interim-sheets-sync/internal/config"
)

// assetQuery is the read-only extract of every asset known to the legacy
// system, served by the interim_process_assets view on the reporting
// replica.
const assetQuery = `
	SELECT prop_ref,
	       COALESCE(property_llpg_ref, '') AS property_llpg_ref,
	       COALESCE(property_full_address, '') AS property_full_address,
	       COALESCE(asset_type, '') AS asset_type
	FROM interim_process_assets
	ORDER BY prop_ref`

// OpenDB connects to the UH reporting database.
func OpenDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
	}
	if cfg.MaxIdle > 0 {
		db.SetMaxIdleConns(cfg.MaxIdle)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// LoadAssets runs the asset extract and returns the full asset list in
// query order.
func LoadAssets(ctx context.Context, db *sql.DB) ([]AssetSummary, error) {
	rows, err := db.QueryContext(ctx, assetQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []AssetSummary
	for rows.Next() {
		var a AssetSummary
		if err := rows.Scan(&a.PropRef, &a.UPRN, &a.FullAddress, &a.AssetType); err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read asset rows: %w", err)
	}
	return assets, nil
}
