package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	tokenSecret string
	tokenIssuer string
	tokenExpiry time.Duration
)

// InitJWT initializes the signing secret, issuer and token lifetime
func InitJWT(secret, issuer string, expiry time.Duration) {
	tokenSecret = secret
	tokenIssuer = issuer
	tokenExpiry = expiry
}

// Claims represents JWT custom claims.
// RegisteredClaims.ID (jti) identifies the server-side session.
type Claims struct {
	UserID  uint `json:"user_id"`
	GroupID uint `json:"group_id"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a new access token with a fresh token id
func GenerateAccessToken(userID, groupID uint) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  userID,
		GroupID: groupID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(tokenSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ValidateAccessToken validates signature, issuer and expiry of an access token
func ValidateAccessToken(tokenString string) (*Claims, error) {
	return parse(tokenString, jwt.WithIssuer(tokenIssuer))
}

// ParseAccessTokenIgnoringExpiry checks the signature and issuer but not expiry.
// Logout uses it so an expired token can still be invalidated.
func ParseAccessTokenIgnoringExpiry(tokenString string) (*Claims, error) {
	claims, err := parse(tokenString, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, err
	}
	// WithoutClaimsValidation skips the issuer option as well
	if claims.Issuer != tokenIssuer {
		return nil, errors.New("token has invalid issuer")
	}
	return claims, nil
}

func parse(tokenString string, opts ...jwt.ParserOption) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(tokenSecret), nil
	}, opts...)

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if claims.ID == "" {
			return nil, errors.New("token has no id")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// GetTokenExpiry returns the access token lifetime
func GetTokenExpiry() time.Duration {
	return tokenExpiry
}
