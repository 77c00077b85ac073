package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domproduct "example.com/catalog-console/app/internal/domain/product"
)

const productColumns = `id, title, category, origin_price, price, unit, description, content, is_enabled, image_url, images_url`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS products (
            id           TEXT PRIMARY KEY,
            title        TEXT NOT NULL,
            category     TEXT NOT NULL,
            origin_price DOUBLE PRECISION NOT NULL DEFAULT 0,
            price        DOUBLE PRECISION NOT NULL DEFAULT 0,
            unit         TEXT NOT NULL,
            description  TEXT NOT NULL,
            content      TEXT NOT NULL,
            is_enabled   INTEGER NOT NULL DEFAULT 0,
            image_url    TEXT NULL,
            images_url   TEXT[] NOT NULL DEFAULT '{}',
            created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
        )
    `)
	return err
}

func (r *ProductRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO products (`+productColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, p.ID, p.Title, p.Category, p.OriginPrice, p.Price, p.Unit, p.Description, p.Content,
		p.IsEnabled, p.ImageURL, images(p))
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE products SET title = $2, category = $3, origin_price = $4, price = $5, unit = $6,
            description = $7, content = $8, is_enabled = $9, image_url = $10, images_url = $11
        WHERE id = $1
    `, p.ID, p.Title, p.Category, p.OriginPrice, p.Price, p.Unit, p.Description, p.Content,
		p.IsEnabled, p.ImageURL, images(p))
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domproduct.ErrProductNotFound
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domproduct.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*domproduct.Product, error) {
	var p domproduct.Product
	if err := row.Scan(&p.ID, &p.Title, &p.Category, &p.OriginPrice, &p.Price, &p.Unit,
		&p.Description, &p.Content, &p.IsEnabled, &p.ImageURL, &p.ImagesURL); err != nil {
		return nil, err
	}
	if p.ImagesURL == nil {
		p.ImagesURL = []string{}
	}
	return &p, nil
}

func images(p *domproduct.Product) []string {
	if p.ImagesURL == nil {
		return []string{}
	}
	return p.ImagesURL
}
