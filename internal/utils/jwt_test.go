package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestJWTUtil_GenerateToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", "HS256", 30)
	email := "f@x.com"
	userID := "6f1c8a52-8f7e-4c15-9f2a-1c5a0d9b3e77"

	tokenString, err := jwtUtil.GenerateToken(email, userID)

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	// Validate the token to ensure it's well-formed and contains correct claims
	claims, err := jwtUtil.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, email, claims.Subject)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTUtil_ValidateToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", "HS256", 30)

	tokenString, _ := jwtUtil.GenerateToken("f@x.com", "user-1")

	claims, err := jwtUtil.ValidateToken(tokenString)

	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "f@x.com", claims.Subject)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestJWTUtil_ValidateToken_InvalidToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", "HS256", 30)

	_, err := jwtUtil.ValidateToken("invalid.token.string")
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_Tampered(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", "HS256", 30)

	tokenString, _ := jwtUtil.GenerateToken("f@x.com", "user-1")

	// Flip one byte of the payload; the signature must no longer match.
	parts := strings.Split(tokenString, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err := jwtUtil.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_ExpiredToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", "HS256", -1) // Token expires in the past

	tokenString, _ := jwtUtil.GenerateToken("f@x.com", "user-1")

	time.Sleep(1 * time.Second)

	_, err := jwtUtil.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTUtil_ValidateToken_WrongSecret(t *testing.T) {
	jwtUtil1 := NewJWTUtil("secret1", "HS256", 30)
	jwtUtil2 := NewJWTUtil("secret2", "HS256", 30)

	tokenString, _ := jwtUtil1.GenerateToken("f@x.com", "user-1")

	_, err := jwtUtil2.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTUtil_ValidateToken_NonHMACMethodRejected(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", "HS256", 30)
	// A token declaring alg=none must never validate.
	claims := &JWTClaims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "f@x.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

	_, err := jwtUtil.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected signing method")
}

func TestNewJWTUtil_UnknownAlgorithmFallsBackToHS256(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", "RS256", 30)

	tokenString, err := jwtUtil.GenerateToken("f@x.com", "user-1")
	assert.NoError(t, err)

	claims, err := jwtUtil.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}
