package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	// Hash returns a salted hash of the password suitable for storage.
	Hash(password string) (string, error)

	// Compare returns nil if password matches the stored hash and
	// ErrPasswordMismatch otherwise.
	Compare(hash, password string) error
}
