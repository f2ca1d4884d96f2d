package crypto_test

import (
	"strings"
	"testing"

	"ecommerce/internal/adapters/out/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastParams keeps the tests quick; production uses DefaultParams.
var fastParams = crypto.Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	hasher := crypto.NewArgon2Hasher(fastParams)

	encoded, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	t.Run("matching password verifies", func(t *testing.T) {
		ok, verifyErr := hasher.Verify("correct horse battery staple", encoded)

		require.NoError(t, verifyErr)
		assert.True(t, ok)
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		ok, verifyErr := hasher.Verify("wrong", encoded)

		require.NoError(t, verifyErr)
		assert.False(t, ok)
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		other, hashErr := hasher.Hash("correct horse battery staple")

		require.NoError(t, hashErr)
		assert.NotEqual(t, encoded, other)
	})
}

func TestArgon2Hasher_Verify_ParamsFromHash(t *testing.T) {
	// A hash produced with one parameter set must verify under a hasher
	// configured with another.
	writer := crypto.NewArgon2Hasher(fastParams)
	reader := crypto.NewArgon2Hasher(crypto.DefaultParams)

	encoded, err := writer.Hash("secret")
	require.NoError(t, err)

	ok, err := reader.Verify("secret", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon2Hasher_Verify_MalformedHash(t *testing.T) {
	hasher := crypto.NewArgon2Hasher(fastParams)

	for _, encoded := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=8192,t=1,p=1$not-base64!$aGFzaA",
	} {
		_, err := hasher.Verify("secret", encoded)

		require.ErrorIs(t, err, crypto.ErrInvalidHashFormat, "hash: %q", encoded)
	}
}
