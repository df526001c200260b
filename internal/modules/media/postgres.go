package media

import (
	"context"
	"database/sql"
	"encoding/json"
)

type postgresHeroRepo struct{ db *sql.DB }

func NewPostgresHeroRepository(db *sql.DB) HeroRepository { return &postgresHeroRepo{db: db} }

func (r *postgresHeroRepo) Get(ctx context.Context, section string) ([]string, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT images FROM hero_images WHERE section=$1`, section).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var images []string
	if err := json.Unmarshal(raw, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *postgresHeroRepo) Put(ctx context.Context, section string, images []string) error {
	raw, err := json.Marshal(images)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO hero_images (section, images) VALUES ($1,$2)
		ON CONFLICT (section) DO UPDATE SET images=EXCLUDED.images, updated_at=now()`,
		section, raw)
	return err
}
