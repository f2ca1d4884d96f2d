package ports

// PasswordHasher defines the contract for deriving and verifying password
// hashes. Implementations produce self-describing encoded hashes so that
// parameters can evolve without breaking stored credentials.
type PasswordHasher interface {
	// Hash derives an encoded hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the encoded hash.
	Verify(password, encodedHash string) (bool, error)
}
