package user

// PasswordHasher hashes and verifies passwords. Verify must return the same
// error regardless of why verification failed.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
