package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewPath(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{"CSV output", "out/enriched.csv", "out/enriched_review.csv"},
		{"XLSX output", "enriched.xlsx", "enriched_review.csv"},
		{"No extension", "enriched", "enriched_review.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, reviewPath(tt.output))
		})
	}
}

func TestCommandFlags(t *testing.T) {
	for _, name := range []string{"workbook", "review", "keep-empty-rows", "id-map"} {
		require.NotNil(t, Cmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, "w", Cmd.Flags().Lookup("workbook").Shorthand)
}
