package wishlist

import (
	"context"
	"database/sql"
	"encoding/json"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context, deviceID string) ([]*Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, product, added_at
		FROM wishlist_entries WHERE device_id=$1 ORDER BY added_at ASC`, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		var snapshot []byte
		if err := rows.Scan(&e.ProductID, &snapshot, &e.AddedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(snapshot, &e.Product); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *postgresRepo) Add(ctx context.Context, deviceID string, e *Entry) error {
	snapshot, err := json.Marshal(e.Product)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO wishlist_entries (device_id, product_id, product, added_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (device_id, product_id) DO NOTHING`,
		deviceID, e.ProductID, snapshot, e.AddedAt)
	return err
}

func (r *postgresRepo) Remove(ctx context.Context, deviceID, productID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM wishlist_entries WHERE device_id=$1 AND product_id=$2`,
		deviceID, productID)
	return err
}

func (r *postgresRepo) Contains(ctx context.Context, deviceID, productID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM wishlist_entries WHERE device_id=$1 AND product_id=$2)`,
		deviceID, productID).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return exists, err
}
