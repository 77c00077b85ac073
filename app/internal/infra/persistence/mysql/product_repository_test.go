package mysql

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"

	domproduct "example.com/catalog-console/app/internal/domain/product"
)

// Runs against a real server only when MYSQL_TEST_DSN is set, e.g.
// user:pass@tcp(localhost:3306)/testdb?parseTime=true
func setupRepository(t *testing.T) *ProductRepository {
	t.Helper()
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}
	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewProductRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Ping(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))
	return repo
}

func TestProductRepository_CRUD(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	id := "t" + strconv.FormatInt(time.Now().UnixNano(), 10)
	t.Cleanup(func() { _ = repo.Delete(ctx, id) })

	img := "https://img/main"
	_, err := repo.Create(ctx, &domproduct.Product{
		ID: id, Title: "Tea", Category: "drink", Price: 100, Unit: "cup",
		IsEnabled: 1, ImageURL: &img, ImagesURL: []string{"https://img/a"},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Tea", got.Title)
	require.Equal(t, "https://img/main", got.MainImage())
	require.Equal(t, []string{"https://img/a"}, got.ImagesURL)

	got.Title = "Green tea"
	got.ImageURL = nil
	got.ImagesURL = []string{}
	_, err = repo.Update(ctx, got)
	require.NoError(t, err)

	got, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Green tea", got.Title)
	require.Nil(t, got.ImageURL)
	require.Empty(t, got.ImagesURL)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
	require.ErrorIs(t, repo.Delete(ctx, id), domproduct.ErrProductNotFound)

	_, err = repo.Update(ctx, &domproduct.Product{ID: id, Title: "gone"})
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}
