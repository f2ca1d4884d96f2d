// Package crypto provides the Argon2id implementation of the password
// hasher port. Hashes are stored in PHC format so the cost parameters can
// change without invalidating existing credentials.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"ecommerce/internal/core/ports"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidHashFormat is returned when a stored hash cannot be parsed as a
// PHC-format Argon2id string.
var ErrInvalidHashFormat = errors.New("invalid password hash format")

// Params defines the memory and CPU cost factors for Argon2id.
type Params struct {
	Memory      uint32 // RAM usage in KB
	Iterations  uint32 // number of passes over the memory
	Parallelism uint8  // number of threads to use
	SaltLength  uint32 // random salt length in bytes
	KeyLength   uint32 // final hash length in bytes
}

// DefaultParams balances security against the latency budget of a sign-in
// request on a typical cloud container.
var DefaultParams = Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// Argon2Hasher implements ports.PasswordHasher with Argon2id.
type Argon2Hasher struct {
	params Params
}

// NewArgon2Hasher creates a hasher with the given cost parameters.
func NewArgon2Hasher(params Params) *Argon2Hasher {
	return &Argon2Hasher{params: params}
}

var _ ports.PasswordHasher = (*Argon2Hasher)(nil)

// Hash derives a PHC-encoded Argon2id hash. A fresh random salt is drawn on
// every call so identical passwords produce different hashes.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	hash := argon2.IDKey(
		[]byte(password),
		salt,
		h.params.Iterations,
		h.params.Memory,
		h.params.Parallelism,
		h.params.KeyLength,
	)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Iterations,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// Verify re-derives the hash with the parameters embedded in the stored
// value and compares in constant time.
func (h *Argon2Hasher) Verify(password, encodedHash string) (bool, error) {
	params, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	otherHash := argon2.IDKey(
		[]byte(password),
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		params.KeyLength,
	)

	return subtle.ConstantTimeCompare(hash, otherHash) == 1, nil
}

// decodeHash parses a "$argon2id$v=19$m=...,t=...,p=...$salt$hash" string
// into its parameters, salt and key.
func decodeHash(encodedHash string) (Params, []byte, []byte, error) {
	vals := strings.Split(encodedHash, "$")
	if len(vals) != 6 || vals[1] != "argon2id" {
		return Params{}, nil, nil, ErrInvalidHashFormat
	}

	var version int
	if _, err := fmt.Sscanf(vals[2], "v=%d", &version); err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHashFormat, err)
	}
	if version != argon2.Version {
		return Params{}, nil, nil, fmt.Errorf("%w: incompatible argon2 version %d", ErrInvalidHashFormat, version)
	}

	var params Params
	if _, err := fmt.Sscanf(vals[3], "m=%d,t=%d,p=%d",
		&params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHashFormat, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(vals[4])
	if err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHashFormat, err)
	}

	hash, err := base64.RawStdEncoding.DecodeString(vals[5])
	if err != nil {
		return Params{}, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHashFormat, err)
	}
	params.KeyLength = uint32(len(hash))

	return params, salt, hash, nil
}
