package users

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt reads at most 72 bytes, so passwords are reduced to a fixed 44-byte
// digest first. Every byte of the password still affects the hash.
func prehash(rawPassword string) []byte {
	sum := sha256.Sum256([]byte(rawPassword))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// HashPassword returns a salted bcrypt hash of rawPassword of any length.
// A zero cost means bcrypt.DefaultCost.
func HashPassword(rawPassword string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword(prehash(rawPassword), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether rawPassword matches a hash from HashPassword.
func CheckPassword(hash, rawPassword string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(rawPassword)) == nil
}
