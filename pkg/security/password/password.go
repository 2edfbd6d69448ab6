// Package password wraps the one-way credential digest. Callers only ever
// see Hash and Compare; plaintext never leaves the call stack.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher abstracts the digest algorithm so use cases stay testable without
// paying bcrypt cost.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(plain, digest string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcrypt returns a bcrypt-backed Hasher. Cost values outside bcrypt's
// range fall back to the library default.
func NewBcrypt(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return bcryptHasher{cost: cost}
}

func (h bcryptHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h bcryptHasher) Compare(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
