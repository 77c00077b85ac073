package bolt

import (
	"context"
	"encoding/binary"
	"time"

	jsoniter "github.com/json-iterator/go"
	bbolt "go.etcd.io/bbolt"

	domproduct "example.com/catalog-console/app/internal/domain/product"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	productsBucket = []byte("products")
	// id -> sequence key in productsBucket
	indexBucket = []byte("product_ids")
)

// ProductRepository stores products in an embedded bbolt file, keyed by
// insertion sequence so List keeps creation order.
type ProductRepository struct {
	db *bbolt.DB
}

func Open(path string) (*ProductRepository, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(productsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(indexBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &ProductRepository{db: db}, nil
}

func (r *ProductRepository) Close() error {
	return r.db.Close()
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	value, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	err = r.db.Update(func(tx *bbolt.Tx) error {
		products, index := tx.Bucket(productsBucket), tx.Bucket(indexBucket)
		key := index.Get([]byte(p.ID))
		if key == nil {
			seq, err := products.NextSequence()
			if err != nil {
				return err
			}
			key = itob(seq)
			if err := index.Put([]byte(p.ID), key); err != nil {
				return err
			}
		}
		return products.Put(key, value)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	value, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	err = r.db.Update(func(tx *bbolt.Tx) error {
		key := tx.Bucket(indexBucket).Get([]byte(p.ID))
		if key == nil {
			return domproduct.ErrProductNotFound
		}
		return tx.Bucket(productsBucket).Put(key, value)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		index := tx.Bucket(indexBucket)
		key := index.Get([]byte(id))
		if key == nil {
			return domproduct.ErrProductNotFound
		}
		if err := tx.Bucket(productsBucket).Delete(key); err != nil {
			return err
		}
		return index.Delete([]byte(id))
	})
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	var p domproduct.Product
	err := r.db.View(func(tx *bbolt.Tx) error {
		key := tx.Bucket(indexBucket).Get([]byte(id))
		if key == nil {
			return domproduct.ErrProductNotFound
		}
		value := tx.Bucket(productsBucket).Get(key)
		if value == nil {
			return domproduct.ErrProductNotFound
		}
		return json.Unmarshal(value, &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	var products []*domproduct.Product
	err := r.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(productsBucket).ForEach(func(_, value []byte) error {
			var p domproduct.Product
			if err := json.Unmarshal(value, &p); err != nil {
				return err
			}
			products = append(products, &p)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
