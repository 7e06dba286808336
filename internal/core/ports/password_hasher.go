package ports

// PasswordHasher hides the credential hashing scheme behind the driver
// registry boundary. Plaintext passwords exist only transiently in the
// registration and login use cases; everything stored or compared goes
// through this interface.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the stored hash.
	// A mismatch is an error distinct from infrastructure failures.
	Compare(hash, password string) error
}
