package identity

import (
	"fmt"
	"os"
)

// LoadDomainConfigsFromEnv builds the domain list from the environment.
//
// The primary domain (AUTH_DOMAIN, AUTH_AUDIENCE, AUTH_SECRET) is required.
// The admin overlay is enabled only when all of AUTH_ADMIN_DOMAIN,
// AUTH_ADMIN_AUDIENCE, AUTH_ADMIN_SECRET, AUTH_ADMIN_MATCH_KEY and
// AUTH_ADMIN_MATCH_VALUE are set.
func LoadDomainConfigsFromEnv() ([]DomainConfig, error) {
	primary := DomainConfig{
		Domain:   os.Getenv("AUTH_DOMAIN"),
		Audience: os.Getenv("AUTH_AUDIENCE"),
		Secret:   []byte(os.Getenv("AUTH_SECRET")),
	}
	if primary.Domain == "" || primary.Audience == "" || len(primary.Secret) == 0 {
		return nil, fmt.Errorf("AUTH_DOMAIN, AUTH_AUDIENCE and AUTH_SECRET must be set")
	}

	configs := []DomainConfig{primary}

	adminDomain := os.Getenv("AUTH_ADMIN_DOMAIN")
	adminAudience := os.Getenv("AUTH_ADMIN_AUDIENCE")
	adminSecret := os.Getenv("AUTH_ADMIN_SECRET")
	matchKey := os.Getenv("AUTH_ADMIN_MATCH_KEY")
	matchValue := os.Getenv("AUTH_ADMIN_MATCH_VALUE")

	if adminDomain != "" && adminAudience != "" && adminSecret != "" && matchKey != "" && matchValue != "" {
		configs = append(configs, DomainConfig{
			Domain:    adminDomain,
			Audience:  adminAudience,
			Secret:    []byte(adminSecret),
			MatchKeys: map[string]string{matchKey: matchValue},
		})
	}

	return configs, nil
}
