package security

import "golang.org/x/crypto/bcrypt"

// BcryptService hashes and checks sandbox admin passwords.
type BcryptService struct {
	cost int
}

func NewBcryptService(cost int) *BcryptService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptService{cost: cost}
}

// Prepare returns secret unchanged when it already is a bcrypt hash and
// hashes it otherwise, so the admin password may be configured either way.
func (s *BcryptService) Prepare(secret string) (string, error) {
	if _, err := bcrypt.Cost([]byte(secret)); err == nil {
		return secret, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *BcryptService) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
