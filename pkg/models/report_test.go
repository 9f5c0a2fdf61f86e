package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductFeature(t *testing.T) {
	t.Run("splits on the first dot", func(t *testing.T) {
		product, feature, err := ParseProductFeature("abaqus.standard")
		require.NoError(t, err)
		assert.Equal(t, "abaqus", product)
		assert.Equal(t, "standard", feature)
	})

	t.Run("rejects malformed keys", func(t *testing.T) {
		for _, pf := range []string{"", "abaqus", ".standard", "abaqus.", "a.b.c", "a b.c"} {
			_, _, err := ParseProductFeature(pf)
			assert.Error(t, err, "key %q", pf)
		}
	})
}

func TestFormatProductFeature(t *testing.T) {
	assert.Equal(t, "abaqus.standard", FormatProductFeature("abaqus", "standard"))
}

func TestFeatureProductFeature(t *testing.T) {
	t.Run("with product edge", func(t *testing.T) {
		f := &Feature{Name: "standard", Edges: FeatureEdges{Product: &Product{Name: "abaqus"}}}
		assert.Equal(t, "abaqus.standard", f.ProductFeature())
	})

	t.Run("without product edge", func(t *testing.T) {
		f := &Feature{Name: "standard"}
		assert.Equal(t, "standard", f.ProductFeature())
	})
}
