package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by every token. StoreID is 0 for accounts without a store.
type Claims struct {
	UserID  uint   `json:"userId"`
	Role    string `json:"role"`
	StoreID uint   `json:"storeId,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed token for a user.
func GenerateToken(userID uint, role string, storeID uint, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:  userID,
		Role:    role,
		StoreID: storeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
