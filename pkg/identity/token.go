package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CreateTimedToken mints an HS256 token with sub, iss and exp claims.
// A zero duration produces a non-expiring token. Extra claims may be
// supplied for audience, azp, permissions and the like.
func CreateTimedToken(sub, iss string, secret []byte, duration time.Duration, extra map[string]any) (string, error) {
	if sub == "" || iss == "" || len(secret) == 0 {
		return "", errors.New("secret, sub, and iss cannot be empty")
	}

	claims := jwt.MapClaims{
		"sub": sub,
		"iss": iss,
	}
	if duration > 0 {
		claims["exp"] = jwt.NewNumericDate(time.Now().Add(duration))
	}
	for k, v := range extra {
		claims[k] = v
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// DecodeUnverified parses a token without checking its signature and
// returns the claims. The caller owns deciding what the claims mean;
// this is used where the token is opaque to us (the agent's cache check).
func DecodeUnverified(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
