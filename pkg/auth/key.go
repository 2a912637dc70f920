package auth

import "golang.org/x/crypto/bcrypt"

// KeyVerifierInterface checks a presented admin key against its stored
// bcrypt hash.
type KeyVerifierInterface interface {
	CompareKey(keyHash, key string) bool
}

type KeyVerifier struct{}

func (v *KeyVerifier) CompareKey(keyHash, key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)) == nil
}
