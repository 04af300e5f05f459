package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// candidates against a stored hash. Plaintext passwords never leave the
// service layer and are never persisted.
type PasswordHasher interface {
	// Hash returns a salted, self-describing hash of password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch is reported
	// as ErrPasswordMismatch; any other error means hash is malformed.
	Compare(hash, password string) error
}
