package console

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domsession "example.com/catalog-console/app/internal/domain/session"
)

// SessionManager decides whether the console shows the login view or the
// product table.
type SessionManager struct {
	auth     domsession.Authenticator
	products *ProductList
	validate *validator.Validate

	Loading       bool
	Authenticated bool
	// Message is shown on the login view after a failed sign-in.
	Message string
}

func NewSessionManager(auth domsession.Authenticator, products *ProductList, validate *validator.Validate) *SessionManager {
	if validate == nil {
		validate = validator.New()
	}
	return &SessionManager{
		auth:     auth,
		products: products,
		validate: validate,
		Loading:  true,
	}
}

// Restore validates the token carried by ctx. On success the product
// list is fetched with the same context.
func (m *SessionManager) Restore(ctx context.Context) {
	defer func() { m.Loading = false }()

	if domsession.FromContext(ctx) == "" {
		m.Authenticated = false
		return
	}
	if err := m.auth.Check(ctx); err != nil {
		zap.L().Info("session check failed", zap.Error(err))
		m.Authenticated = false
		return
	}
	m.Authenticated = true
	_ = m.products.Refresh(ctx)
}

// Login exchanges creds for a token. The caller persists the returned
// token; the product list is already fetched with it.
func (m *SessionManager) Login(ctx context.Context, creds domsession.Credentials) (*domsession.Token, error) {
	defer func() { m.Loading = false }()

	if err := m.validate.Struct(creds); err != nil {
		m.Authenticated = false
		m.Message = "Username and password are required"
		return nil, err
	}

	token, err := m.auth.SignIn(ctx, creds)
	if err != nil {
		zap.L().Warn("sign in failed", zap.String("username", creds.Username), zap.Error(err))
		m.Authenticated = false
		m.Message = FailureMessage(err)
		return nil, err
	}

	m.Authenticated = true
	m.Message = ""
	_ = m.products.Refresh(domsession.NewContext(ctx, token.Value))
	return token, nil
}

// Logout tells the remote API to end the session. Failures are logged
// only; the console is unauthenticated afterwards either way.
func (m *SessionManager) Logout(ctx context.Context) {
	if domsession.FromContext(ctx) != "" {
		if err := m.auth.SignOut(ctx); err != nil {
			zap.L().Warn("sign out failed", zap.Error(err))
		}
	}
	m.Authenticated = false
	m.Loading = false
}
