package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	CompanyID string `json:"company_id"`
	BranchID  string `json:"branch_id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs claims for u. Tokens are issued by the identity service;
// this is used by tests and local tooling.
func IssueToken(secret string, u UserContext, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		CompanyID: u.CompanyID,
		BranchID:  u.BranchID,
		UserID:    u.UserID,
		Role:      u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (UserContext, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return UserContext{}, ErrInvalidToken
	}
	if claims.CompanyID == "" || claims.BranchID == "" {
		return UserContext{}, ErrInvalidToken
	}
	return UserContext{
		CompanyID: claims.CompanyID,
		BranchID:  claims.BranchID,
		UserID:    claims.UserID,
		Role:      claims.Role,
	}, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(header[7:])
	return tok, tok != ""
}
