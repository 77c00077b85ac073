package console

import (
	"context"
	"errors"
	"time"

	domproduct "example.com/catalog-console/app/internal/domain/product"
	domsession "example.com/catalog-console/app/internal/domain/session"
)

type serverError struct{ msg string }

func (e *serverError) Error() string       { return "remote: " + e.msg }
func (e *serverError) UserMessage() string { return e.msg }

type call struct {
	op      string
	id      string
	token   string
	payload *domproduct.Product
}

type fakeBackend struct {
	checkErr  error
	signInErr error
	listErr   error
	mutateErr error
	signOut   error

	page  *domproduct.Page
	calls []call
}

func (f *fakeBackend) record(ctx context.Context, op, id string, p *domproduct.Product) {
	f.calls = append(f.calls, call{op: op, id: id, token: domsession.FromContext(ctx), payload: p})
}

func (f *fakeBackend) ops() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.op)
	}
	return out
}

func (f *fakeBackend) SignIn(ctx context.Context, creds domsession.Credentials) (*domsession.Token, error) {
	f.record(ctx, "signin", "", nil)
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return &domsession.Token{Value: "tok-" + creds.Username, Expires: time.UnixMilli(1700000000000)}, nil
}

func (f *fakeBackend) Check(ctx context.Context) error {
	f.record(ctx, "check", "", nil)
	return f.checkErr
}

func (f *fakeBackend) SignOut(ctx context.Context) error {
	f.record(ctx, "signout", "", nil)
	return f.signOut
}

func (f *fakeBackend) List(ctx context.Context, _ domproduct.ListFilter) (*domproduct.Page, error) {
	f.record(ctx, "list", "", nil)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.page == nil {
		return &domproduct.Page{}, nil
	}
	return f.page, nil
}

func (f *fakeBackend) Create(ctx context.Context, p *domproduct.Product) error {
	f.record(ctx, "create", "", p)
	return f.mutateErr
}

func (f *fakeBackend) Update(ctx context.Context, id string, p *domproduct.Product) error {
	f.record(ctx, "update", id, p)
	return f.mutateErr
}

func (f *fakeBackend) Delete(ctx context.Context, id string) error {
	f.record(ctx, "delete", id, nil)
	return f.mutateErr
}

var errNetwork = errors.New("connection refused")

func samplePage() *domproduct.Page {
	img := "https://img/tea.png"
	return &domproduct.Page{
		Products: []*domproduct.Product{
			{ID: "p1", Title: "Tea", Category: "drink", OriginPrice: 120, Price: 100, Unit: "cup", IsEnabled: 1, ImageURL: &img, ImagesURL: []string{"https://img/a"}},
			{ID: "p2", Title: "Cake", Category: "food", OriginPrice: 90, Price: 80, Unit: "slice"},
		},
		Pagination: &domproduct.Pagination{TotalPages: 1, CurrentPage: 1},
	}
}
