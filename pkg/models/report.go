// Package models holds the wire types shared by the ledger, the agent and
// the CLI.
package models

import (
	"fmt"
	"regexp"
)

// productFeatureRx matches the textual feature key "product.feature".
var productFeatureRx = regexp.MustCompile(`^[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+$`)

// ReportItem is one reconciliation record: the live token counts for a
// single product.feature as observed on the vendor license server.
type ReportItem struct {
	ProductFeature string `json:"product_feature"`
	Used           int    `json:"used"`
	Total          int    `json:"total"`
}

// ReconcileResponse is returned by PATCH /reconcile.
type ReconcileResponse struct {
	Updated int `json:"updated"`
}

// ParseProductFeature splits a "product.feature" key into its parts.
func ParseProductFeature(pf string) (product, feature string, err error) {
	if !productFeatureRx.MatchString(pf) {
		return "", "", fmt.Errorf("invalid product_feature %q: want product.feature", pf)
	}
	for i := 0; i < len(pf); i++ {
		if pf[i] == '.' {
			return pf[:i], pf[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("invalid product_feature %q", pf) // unreachable
}

// FormatProductFeature joins product and feature names into the textual key.
func FormatProductFeature(product, feature string) string {
	return product + "." + feature
}
