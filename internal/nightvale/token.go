/**
 * @description
 * Bearer token inspection helpers.
 * The game API issues JWT bearer tokens; we can't verify their signature
 * (no published key set) but we can peek at the expiry claim to warn
 * operators before a fetch run starts failing with 401s.
 *
 * @dependencies
 * - github.com/golang-jwt/jwt/v5
 */

package nightvale

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiresAt extracts the expiry claim from a bearer token without
// verifying its signature. Returns nil when the token carries no expiry.
func TokenExpiresAt(token string) (*time.Time, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return nil, fmt.Errorf("token is empty")
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("token is not a parsable JWT: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, nil
	}
	t := exp.Time
	return &t, nil
}

// TokenExpired reports whether the token carries an expiry in the past.
// Unparsable tokens are not reported as expired; the upstream API is the
// authority and will reject them itself.
func TokenExpired(token string, now time.Time) bool {
	exp, err := TokenExpiresAt(token)
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
