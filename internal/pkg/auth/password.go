package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor applied to every stored credential.
const HashCost = 12

// PasswordHasher defines hashing strategy for credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher uses bcrypt to hash passwords.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher with the provided cost.
// A non-positive cost falls back to HashCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = HashCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt digest for the provided password. The salt is
// generated per call, so hashing the same password twice differs.
func (h *BcryptHasher) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Compare checks password against stored hash.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
