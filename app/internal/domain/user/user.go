package user

// User is a sandbox administrator allowed to sign in.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
