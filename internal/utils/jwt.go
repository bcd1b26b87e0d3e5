// Package utils holds small helpers shared across the client: JWT token
// inspection and bearer header parsing.
package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by [TokenExpiry] when the token carries no exp claim.
var ErrNoExpiry = errors.New("token has no expiry claim")

// TokenExpiry extracts the exp claim from a JWT without verifying the
// signature. The client never holds the server's signing key; it only needs
// the expiry to decide whether a stored session is worth restoring.
func TokenExpiry(tokenString string) (time.Time, error) {
	claims, err := parseUnverified(tokenString)
	if err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// TokenExpired reports whether the token's exp claim lies in the past.
// Tokens without an expiry claim are treated as not expired; the server is
// the final authority either way.
func TokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}
	return exp.Before(now)
}

// TokenSubject extracts the sub claim from a JWT without verifying the
// signature.
func TokenSubject(tokenString string) (string, error) {
	claims, err := parseUnverified(tokenString)
	if err != nil {
		return "", err
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error reading token subject: %w", err)
	}

	return sub, nil
}

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>".
func ParseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUnverified(tokenString string) (jwt.MapClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("error parsing JWT token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
