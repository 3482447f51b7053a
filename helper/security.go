package helper

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	hashPrefix = "scrypt"
	keyLength  = 64
	saltBytes  = 16

	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// IsLegacyPlaintext reports whether a stored password predates hashing.
// Rows matching are rehashed lazily on the next successful login.
func IsLegacyPlaintext(stored string) bool {
	return !strings.HasPrefix(stored, hashPrefix+"$")
}

func HashPassword(rawPassword string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)

	derived, err := scrypt.Key([]byte(rawPassword), []byte(saltHex), scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", err
	}

	return hashPrefix + "$" + saltHex + "$" + hex.EncodeToString(derived), nil
}

func safeStringCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// VerifyPassword checks rawPassword against a stored record, which is either
// legacy plaintext or scrypt$<saltHex>$<keyHex>. Malformed records verify as
// false; comparisons are constant time either way.
func VerifyPassword(rawPassword, stored string) bool {
	if stored == "" {
		return false
	}

	if IsLegacyPlaintext(stored) {
		return safeStringCompare(rawPassword, stored)
	}

	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[0] != hashPrefix || parts[1] == "" || parts[2] == "" {
		return false
	}

	expected, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	derived, err := scrypt.Key([]byte(rawPassword), []byte(parts[1]), scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return false
	}

	if len(derived) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare(derived, expected) == 1
}
