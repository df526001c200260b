package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id, name, brand, category, sub_category, price, offer_price,
	description, image, gallery, is_stock, is_visible, is_best_seller,
	is_decant_available, decant_price_3ml, decant_price_5ml, decant_price_10ml,
	created_at, updated_at`

func nullable(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	var offer, d3, d5, d10 sql.NullInt64
	var gallery []byte
	err := scan(&p.ID, &p.Name, &p.Brand, &p.Category, &p.SubCategory,
		&p.Price, &offer, &p.Description, &p.Image, &gallery,
		&p.IsStock, &p.IsVisible, &p.IsBestSeller, &p.IsDecantAvailable,
		&d3, &d5, &d10, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if offer.Valid {
		p.OfferPrice = &offer.Int64
	}
	if d3.Valid {
		p.DecantPrice3ml = &d3.Int64
	}
	if d5.Valid {
		p.DecantPrice5ml = &d5.Int64
	}
	if d10.Valid {
		p.DecantPrice10ml = &d10.Int64
	}
	if gallery != nil {
		if err := json.Unmarshal(gallery, &p.Gallery); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE id=$1`, id)
	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *postgresRepo) Upsert(ctx context.Context, p *Product) error {
	gallery, err := json.Marshal(p.Gallery)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, name, brand, category, sub_category, price, offer_price,
		   description, image, gallery, is_stock, is_visible, is_best_seller,
		   is_decant_available, decant_price_3ml, decant_price_5ml, decant_price_10ml)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (id) DO UPDATE SET
		  name=EXCLUDED.name, brand=EXCLUDED.brand, category=EXCLUDED.category,
		  sub_category=EXCLUDED.sub_category, price=EXCLUDED.price,
		  offer_price=EXCLUDED.offer_price, description=EXCLUDED.description,
		  image=EXCLUDED.image, gallery=EXCLUDED.gallery,
		  is_stock=EXCLUDED.is_stock, is_visible=EXCLUDED.is_visible,
		  is_best_seller=EXCLUDED.is_best_seller,
		  is_decant_available=EXCLUDED.is_decant_available,
		  decant_price_3ml=EXCLUDED.decant_price_3ml,
		  decant_price_5ml=EXCLUDED.decant_price_5ml,
		  decant_price_10ml=EXCLUDED.decant_price_10ml,
		  updated_at=now()`,
		p.ID, p.Name, p.Brand, p.Category, p.SubCategory, p.Price,
		nullable(p.OfferPrice), p.Description, p.Image, gallery,
		p.IsStock, p.IsVisible, p.IsBestSeller, p.IsDecantAvailable,
		nullable(p.DecantPrice3ml), nullable(p.DecantPrice5ml), nullable(p.DecantPrice10ml))
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) CountByCategory(ctx context.Context, category string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE category=$1`, category).Scan(&n)
	return n, err
}
