package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters
const (
	Time    = 1
	Memory  = 64 * 1024
	Threads = 4
	KeyLen  = 32
)

// ErrMalformed is returned for an encoded credential that is not "salt$hash".
var ErrMalformed = errors.New("malformed password hash")

// HashPassword hashes a password with a new random salt using Argon2id
func HashPassword(password string) (hash, salt string, err error) {
	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", err
	}

	hashBytes := argon2.IDKey([]byte(password), saltBytes, Time, Memory, Threads, KeyLen)

	hash = base64.RawStdEncoding.EncodeToString(hashBytes)
	salt = base64.RawStdEncoding.EncodeToString(saltBytes)
	return hash, salt, nil
}

// Encode hashes password and returns the "salt$hash" form stored in the
// admin configuration.
func Encode(password string) (string, error) {
	hash, salt, err := HashPassword(password)
	if err != nil {
		return "", err
	}
	return salt + "$" + hash, nil
}

// Decode splits an encoded credential into hash and salt.
func Decode(encoded string) (hash, salt string, err error) {
	salt, hash, ok := strings.Cut(encoded, "$")
	if !ok || salt == "" || hash == "" {
		return "", "", ErrMalformed
	}
	return hash, salt, nil
}

// VerifyPassword verifies a password against a stored hash and salt
func VerifyPassword(password, hash, salt string) bool {
	saltBytes, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(password), saltBytes, Time, Memory, Threads, KeyLen)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// Verify checks password against an encoded "salt$hash" credential.
func Verify(password, encoded string) bool {
	hash, salt, err := Decode(encoded)
	if err != nil {
		return false
	}
	return VerifyPassword(password, hash, salt)
}
