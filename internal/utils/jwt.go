package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims custom claims for JWT. The registered subject carries the email,
// user_id carries the account id; together with expiry these are the only
// authority a token holds.
type JWTClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey     string
	method        jwt.SigningMethod
	expirationTTL time.Duration
}

// NewJWTUtil creates a new JWTUtil. algorithm must name an HMAC signing method
// (HS256/HS384/HS512); anything else falls back to HS256.
func NewJWTUtil(secretKey, algorithm string, expirationMinutes int64) *JWTUtil {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		method = jwt.SigningMethodHS256
	}
	return &JWTUtil{
		secretKey:     secretKey,
		method:        method,
		expirationTTL: time.Duration(expirationMinutes) * time.Minute,
	}
}

// GenerateToken generates a new signed token for the given identity
func (ju *JWTUtil) GenerateToken(email, userID string) (string, error) {
	now := time.Now()
	claims := &JWTClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ju.expirationTTL)),
		},
	}

	token := jwt.NewWithClaims(ju.method, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates the token and returns its claims. Signature
// mismatch, expiry and malformed structure all come back as errors; callers
// must not surface the distinction to end users.
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
