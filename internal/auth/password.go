package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for every generated hash.
const DefaultCost = 12

// HashPassword hashes a plain text password using bcrypt. A fresh random salt
// is drawn for every call, so hashing the same password twice yields two
// different strings.
func HashPassword(password []byte, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(password, EffectiveCost(cost))
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// EffectiveCost returns cost, or DefaultCost when cost is outside the range
// bcrypt accepts.
func EffectiveCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return DefaultCost
	}
	return cost
}

// VerifyPassword compares a plain text password with a hashed password
func VerifyPassword(password []byte, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), password)
}

// HashCost reports the work factor embedded in a bcrypt hash.
func HashCost(hash string) (int, error) {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return 0, fmt.Errorf("failed to read hash cost: %w", err)
	}
	return cost, nil
}
