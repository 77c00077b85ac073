package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/catalog-console/app/internal/domain/product"
	domuser "example.com/catalog-console/app/internal/domain/user"
)

func TestProductRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	main := "https://img/main.png"

	_, err := repo.Create(ctx, &domproduct.Product{ID: "b", Title: "Second"})
	require.NoError(t, err)
	created, err := repo.Create(ctx, &domproduct.Product{ID: "a", Title: "Tea", ImageURL: &main, ImagesURL: []string{"1"}})
	require.NoError(t, err)
	require.Equal(t, "a", created.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "b", list[0].ID, "insertion order is kept")

	created.ImagesURL[0] = "mutated"
	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, got.ImagesURL, "stored copy is isolated from callers")

	got.Title = "Black Tea"
	_, err = repo.Update(ctx, got)
	require.NoError(t, err)
	got, _ = repo.GetByID(ctx, "a")
	require.Equal(t, "Black Tea", got.Title)

	require.NoError(t, repo.Delete(ctx, "a"))
	_, err = repo.GetByID(ctx, "a")
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "a"), domproduct.ErrProductNotFound)

	_, err = repo.Update(ctx, &domproduct.Product{ID: "zz"})
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)

	list, _ = repo.List(ctx)
	require.Len(t, list, 1)
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository()
	added := repo.Add("admin", "hash")
	require.Equal(t, int64(1), added.ID)

	u, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	require.Equal(t, "hash", u.PasswordHash)

	_, err = repo.GetByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, domuser.ErrUserNotFound)
}
