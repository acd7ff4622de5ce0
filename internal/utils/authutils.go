package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const tokenTTL = 24 * time.Hour

type TokenData struct {
	Sub   string
	Email string
	Exp   int64
}

// IssueToken signs a session token carrying the user's public UUID as
// the subject. Internal numeric ids never leave the server.
func IssueToken(secret []byte, userUUID, email string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userUUID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	})
	return token.SignedString(secret)
}

// ValidateToken parses AND validates the signature locally.
// It returns the data if the token is authentic and unexpired.
func ValidateToken(secret []byte, tokenString string) (*TokenData, error) {
	clean := sanitizeToken(tokenString)
	token, err := jwt.Parse(clean, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims format")
	}

	return &TokenData{
		Sub:   getValue(claims, "sub"),
		Email: getValue(claims, "email"),
		Exp:   getInt64(claims, "exp"),
	}, nil
}

func ParseTokenDataCtx(ctx echo.Context, secret []byte) (*TokenData, error) {
	token := ctx.Request().Header.Get(echo.HeaderAuthorization)
	return ValidateToken(secret, token)
}

func sanitizeToken(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
}

func getValue(claims jwt.MapClaims, key string) string {
	if val, ok := claims[key].(string); ok {
		return val
	}
	return ""
}

func getInt64(claims jwt.MapClaims, key string) int64 {
	val, ok := claims[key]
	if !ok {
		return 0
	}
	if f, ok := val.(float64); ok {
		return int64(f)
	}
	if i, ok := val.(int64); ok {
		return i
	}
	return 0
}
