// Package cryptox provides password hashing for the portal's local
// credential store, based on argon2id.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/fairhub/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 32
	hashSize = 32

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// DeriveKey derives a fixed-size key from the password and salt using
// argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, hashSize)
}

// HashPassword generates a fresh random salt and returns the argon2id hash
// of password together with the salt. Both are stored alongside the user row.
func HashPassword(password []byte) (hash, salt []byte) {
	salt = common.GenerateRandByteArray(saltSize)
	return DeriveKey(password, salt), salt
}

// VerifyPassword reports whether the candidate password, hashed with the
// stored salt, matches the stored hash. The comparison is constant-time.
func VerifyPassword(candidate, salt, hash []byte) bool {
	derived := DeriveKey(candidate, salt)
	return subtle.ConstantTimeCompare(derived, hash) == 1
}
