// Package identity validates bearer tokens for the license-manager ledger.
//
// Tokens are validated against one or two identity-provider domains: a
// primary tenant and an optional admin overlay. The overlay only accepts
// tokens whose claims carry the configured match key/value.
package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Leeway tolerated when checking the exp claim during validation.
const expLeeway = 1 * time.Second

var (
	// ErrInvalidToken is returned when a token fails validation against
	// every configured domain.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingScope is returned when a valid token lacks a required scope.
	ErrMissingScope = errors.New("missing required scope")
)

// DomainConfig describes one identity-provider domain.
type DomainConfig struct {
	// Domain is the issuer host, e.g. "tenant.auth0.com".
	Domain string

	// Audience the token must carry.
	Audience string

	// Secret is the HMAC key shared with the identity provider.
	Secret []byte

	// MatchKeys restricts the domain to tokens carrying these exact
	// claim values. Used by the admin overlay; empty for the primary.
	MatchKeys map[string]string
}

// Payload is the validated identity extracted from a bearer token.
type Payload struct {
	Subject        string
	ClientID       string // azp claim; binds an agent to its cluster row
	ExpiresAt      time.Time
	Permissions    []string
	Email          string
	OrganizationID string
}

// HasScope reports whether the payload carries the given permission scope.
func (p *Payload) HasScope(scope string) bool {
	for _, s := range p.Permissions {
		if s == scope {
			return true
		}
	}
	return false
}

// Validator checks bearer tokens against the configured domains in order.
type Validator struct {
	domains []DomainConfig
}

// NewValidator creates a Validator over the given domain configs.
// At least one domain is required.
func NewValidator(domains ...DomainConfig) (*Validator, error) {
	if len(domains) == 0 {
		return nil, errors.New("at least one identity domain is required")
	}
	for _, d := range domains {
		if d.Domain == "" || d.Audience == "" || len(d.Secret) == 0 {
			return nil, fmt.Errorf("identity domain %q is incomplete", d.Domain)
		}
	}
	return &Validator{domains: domains}, nil
}

// Validate checks the token against each domain in order and returns the
// identity payload from the first domain that accepts it.
func (v *Validator) Validate(token string) (*Payload, error) {
	var lastErr error
	for _, domain := range v.domains {
		payload, err := validateForDomain(token, domain)
		if err != nil {
			lastErr = err
			continue
		}
		return payload, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrInvalidToken, lastErr)
}

func validateForDomain(token string, domain DomainConfig) (*Payload, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return domain.Secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithAudience(domain.Audience),
		jwt.WithLeeway(expLeeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	for key, want := range domain.MatchKeys {
		got, ok := claims[key].(string)
		if !ok || got != want {
			return nil, fmt.Errorf("claim %q does not match domain requirements", key)
		}
	}

	return payloadFromClaims(claims)
}

func payloadFromClaims(claims jwt.MapClaims) (*Payload, error) {
	payload := &Payload{}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token is missing the sub claim")
	}
	payload.Subject = sub

	if azp, ok := claims["azp"].(string); ok {
		payload.ClientID = azp
	}
	if email, ok := claims["email"].(string); ok {
		payload.Email = email
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("token is missing the exp claim")
	}
	payload.ExpiresAt = exp.Time

	if perms, ok := claims["permissions"].([]any); ok {
		for _, p := range perms {
			if s, ok := p.(string); ok {
				payload.Permissions = append(payload.Permissions, s)
			}
		}
	}

	orgID, err := extractOrganizationID(claims)
	if err != nil {
		return nil, err
	}
	payload.OrganizationID = orgID

	return payload, nil
}

// extractOrganizationID pulls the organization id out of the organization
// claim. The claim, when present, is an object with exactly one key, which
// is the organization id:
//
//	"organization": {"org-abc": {"name": "...", ...}}
func extractOrganizationID(claims jwt.MapClaims) (string, error) {
	raw, ok := claims["organization"]
	if !ok || raw == nil {
		return "", nil
	}

	org, ok := raw.(map[string]any)
	if !ok {
		return "", fmt.Errorf("invalid organization payload: %v", raw)
	}
	if len(org) != 1 {
		return "", fmt.Errorf("organization payload did not include exactly one value: %v", raw)
	}
	for id := range org {
		return id, nil
	}
	return "", nil // unreachable
}
