package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"

	domproduct "example.com/catalog-console/app/internal/domain/product"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const productColumns = `id, title, category, origin_price, price, unit, description, content, is_enabled, image_url, images_url`

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS products (
            id           VARCHAR(32)  NOT NULL PRIMARY KEY,
            title        VARCHAR(255) NOT NULL,
            category     VARCHAR(128) NOT NULL,
            origin_price DOUBLE       NOT NULL DEFAULT 0,
            price        DOUBLE       NOT NULL DEFAULT 0,
            unit         VARCHAR(64)  NOT NULL,
            description  TEXT         NOT NULL,
            content      TEXT         NOT NULL,
            is_enabled   TINYINT      NOT NULL DEFAULT 0,
            image_url    VARCHAR(1024) NULL,
            images_url   TEXT         NOT NULL,
            created_at   DATETIME(6)  NOT NULL
        )
    `)
	return err
}

func (r *ProductRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	images, err := json.Marshal(p.ImagesURL)
	if err != nil {
		return nil, err
	}
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO products (`+productColumns+`, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `, p.ID, p.Title, p.Category, p.OriginPrice, p.Price, p.Unit, p.Description, p.Content,
		p.IsEnabled, p.ImageURL, string(images), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	images, err := json.Marshal(p.ImagesURL)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx, `
        UPDATE products SET title = ?, category = ?, origin_price = ?, price = ?, unit = ?,
            description = ?, content = ?, is_enabled = ?, image_url = ?, images_url = ?
        WHERE id = ?
    `, p.Title, p.Category, p.OriginPrice, p.Price, p.Unit, p.Description, p.Content,
		p.IsEnabled, p.ImageURL, string(images), p.ID)
	if err != nil {
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		// MySQL reports 0 affected rows when nothing changed.
		if _, err := r.GetByID(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at, id`)
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

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*domproduct.Product, error) {
	var (
		p        domproduct.Product
		imageURL sql.NullString
		images   string
	)
	if err := s.Scan(&p.ID, &p.Title, &p.Category, &p.OriginPrice, &p.Price, &p.Unit,
		&p.Description, &p.Content, &p.IsEnabled, &imageURL, &images); err != nil {
		return nil, err
	}
	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}
	p.ImagesURL = []string{}
	if images != "" {
		if err := json.Unmarshal([]byte(images), &p.ImagesURL); err != nil {
			return nil, err
		}
	}
	return &p, nil
}
