package order

import (
	"context"
	"database/sql"
	"encoding/json"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders
		  (id, created_at, customer_name, customer_phone, customer_address,
		   total, method, status, items)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		o.ID, o.CreatedAt, o.CustomerName, o.CustomerPhone, o.CustomerAddress,
		o.Total, o.Method, o.Status, items)
	return err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, created_at, customer_name, customer_phone, customer_address,
		       total, method, status, items
		FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		var items []byte
		err := rows.Scan(&o.ID, &o.CreatedAt, &o.CustomerName, &o.CustomerPhone,
			&o.CustomerAddress, &o.Total, &o.Method, &o.Status, &items)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}
