package hexapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domproduct "example.com/catalog-console/app/internal/domain/product"
	domsession "example.com/catalog-console/app/internal/domain/session"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	body   string
}

func setupServer(t *testing.T, status int, response string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		rec.body = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", "shop", WithHTTPClient(srv.Client()), WithTimeout(2*time.Second)), rec
}

func TestSignIn_Success(t *testing.T) {
	client, rec := setupServer(t, http.StatusOK, `{"success":true,"message":"登入成功","token":"tok-1","expired":1700000000000}`)

	token, err := client.SignIn(context.Background(), domsession.Credentials{Username: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "tok-1", token.Value)
	require.Equal(t, time.UnixMilli(1700000000000), token.Expires)

	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, "/admin/signin", rec.path)
	require.JSONEq(t, `{"username":"a@b.c","password":"pw"}`, rec.body)
	require.Empty(t, rec.auth)
}

func TestSignIn_Rejected(t *testing.T) {
	client, _ := setupServer(t, http.StatusBadRequest, `{"success":false,"message":"登入失敗"}`)

	_, err := client.SignIn(context.Background(), domsession.Credentials{Username: "a@b.c", Password: "bad"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "登入失敗", apiErr.Message)
}

func TestCheck_SendsRawToken(t *testing.T) {
	client, rec := setupServer(t, http.StatusOK, `{"success":true,"uid":"u1"}`)

	ctx := domsession.NewContext(context.Background(), "tok-1")
	require.NoError(t, client.Check(ctx))
	require.Equal(t, "/api/user/check", rec.path)
	require.Equal(t, "tok-1", rec.auth)
}

func TestCheck_Unauthorized(t *testing.T) {
	client, _ := setupServer(t, http.StatusUnauthorized, `{"success":false,"message":"請重新登入"}`)

	err := client.Check(domsession.NewContext(context.Background(), "expired"))
	require.Error(t, err)
	require.True(t, errors.Is(err, domsession.ErrUnauthenticated))
}

func TestCheck_SuccessFalseOn200(t *testing.T) {
	client, _ := setupServer(t, http.StatusOK, `{"success":false}`)

	err := client.Check(domsession.NewContext(context.Background(), "tok"))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Empty(t, apiErr.Message)
}

func TestCheck_MissingSuccessFlag(t *testing.T) {
	for _, body := range []string{`{}`, `{"uid":"u1"}`, ``} {
		client, _ := setupServer(t, http.StatusOK, body)

		err := client.Check(domsession.NewContext(context.Background(), "tok"))
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr, "body %q", body)
		require.Equal(t, http.StatusOK, apiErr.Status)
	}
}

func TestCheck_NoTokenSkipsCall(t *testing.T) {
	client, rec := setupServer(t, http.StatusOK, `{"success":true}`)

	require.ErrorIs(t, client.Check(context.Background()), domsession.ErrNoToken)
	require.ErrorIs(t, client.SignOut(context.Background()), domsession.ErrNoToken)
	require.Empty(t, rec.method)
}

func TestSignOut(t *testing.T) {
	client, rec := setupServer(t, http.StatusOK, `{"success":true,"message":"已登出"}`)

	require.NoError(t, client.SignOut(domsession.NewContext(context.Background(), "tok")))
	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, "/logout", rec.path)
	require.Equal(t, "tok", rec.auth)
}

func TestList_DecodesPage(t *testing.T) {
	client, rec := setupServer(t, http.StatusOK, `{
		"success": true,
		"products": [
			{"id":"p1","title":"Tea","category":"drink","origin_price":120,"price":100,"unit":"cup","is_enabled":1,"imageUrl":"https://img/1","imagesUrl":["https://img/2"]}
		],
		"pagination": {"total_pages":2,"current_page":1,"has_pre":false,"has_next":true,"category":""}
	}`)

	ctx := domsession.NewContext(context.Background(), "tok")
	page, err := client.List(ctx, domproduct.ListFilter{Page: 1, Category: "drink"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	require.Equal(t, "Tea", page.Products[0].Title)
	require.Equal(t, "https://img/1", page.Products[0].MainImage())
	require.Equal(t, []string{"https://img/2"}, page.Products[0].ImagesURL)
	require.Equal(t, 2, page.Pagination.TotalPages)
	require.True(t, page.Pagination.HasNext)

	require.Equal(t, http.MethodGet, rec.method)
	require.Equal(t, "/api/shop/admin/products", rec.path)
	require.Equal(t, "category=drink&page=1", rec.query)
	require.Equal(t, "tok", rec.auth)
}

func TestList_NullProducts(t *testing.T) {
	client, _ := setupServer(t, http.StatusOK, `{"success":true,"products":null}`)

	page, err := client.List(context.Background(), domproduct.ListFilter{})
	require.NoError(t, err)
	require.NotNil(t, page.Products)
	require.Empty(t, page.Products)
}

func TestCreate_WrapsPayload(t *testing.T) {
	client, rec := setupServer(t, http.StatusOK, `{"success":true,"message":"已建立產品"}`)

	img := "https://img/main"
	p := &domproduct.Product{Title: "Tea", Category: "drink", Unit: "cup", IsEnabled: 1, ImageURL: &img, ImagesURL: []string{}}
	require.NoError(t, client.Create(domsession.NewContext(context.Background(), "tok"), p))

	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, "/api/shop/admin/product", rec.path)
	require.JSONEq(t, `{"data":{"title":"Tea","category":"drink","origin_price":0,"price":0,"unit":"cup","description":"","content":"","is_enabled":1,"imageUrl":"https://img/main","imagesUrl":[]}}`, rec.body)
}

func TestCreate_ArrayMessage(t *testing.T) {
	client, _ := setupServer(t, http.StatusBadRequest, `{"success":false,"message":["title 欄位為必填","unit 欄位為必填"]}`)

	err := client.Create(context.Background(), &domproduct.Product{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "title 欄位為必填, unit 欄位為必填", apiErr.Message)
}

func TestUpdate_UsesIDInPath(t *testing.T) {
	client, rec := setupServer(t, http.StatusOK, `{"success":true}`)

	err := client.Update(context.Background(), "p-1", &domproduct.Product{ID: "p-1", Title: "Tea"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, rec.method)
	require.Equal(t, "/api/shop/admin/product/p-1", rec.path)
}

func TestUpdate_MissingID(t *testing.T) {
	client, _ := setupServer(t, http.StatusOK, `{"success":true}`)

	err := client.Update(context.Background(), "", &domproduct.Product{})
	require.ErrorIs(t, err, domproduct.ErrMissingProductID)
}

func TestDelete_NoBody(t *testing.T) {
	client, rec := setupServer(t, http.StatusOK, `{"success":true,"message":"已刪除產品"}`)

	require.NoError(t, client.Delete(context.Background(), "p-1"))
	require.Equal(t, http.MethodDelete, rec.method)
	require.Equal(t, "/api/shop/admin/product/p-1", rec.path)
	require.Empty(t, rec.body)
}

func TestDelete_NotFound(t *testing.T) {
	client, _ := setupServer(t, http.StatusNotFound, `{"success":false,"message":"找不到產品"}`)

	err := client.Delete(context.Background(), "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "找不到產品", apiErr.Message)
}

func TestTransportError(t *testing.T) {
	client := New("http://127.0.0.1:1", "shop", WithTimeout(500*time.Millisecond))

	err := client.Check(domsession.NewContext(context.Background(), "tok"))
	require.Error(t, err)
	require.False(t, errors.Is(err, domsession.ErrNoToken))
	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
}

func TestParseMessage(t *testing.T) {
	require.Equal(t, "", parseMessage(nil))
	require.Equal(t, "oops", parseMessage([]byte(`"oops"`)))
	require.Equal(t, "a, b", parseMessage([]byte(`["a","b"]`)))
	require.Equal(t, "", parseMessage([]byte(`{"x":1}`)))
}
