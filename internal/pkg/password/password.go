package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt work factor used when none is configured.
// Hashing at this cost is deliberately slow; do not lower it to speed up
// production logins.
const DefaultCost = 12

// Hasher produces and verifies salted bcrypt digests. The plaintext is
// never logged or stored.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
