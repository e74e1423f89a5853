package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"source4/dash-etl/internal/logging"
)

func TestStoreLoadDefaults(t *testing.T) {
	logger := logging.NewMockLogger()

	// No file configured.
	tax, err := NewStore("", logger).Load()
	require.NoError(t, err)
	assert.Len(t, tax.MainVendors, 18)

	// Configured file does not exist anywhere.
	tax, err = NewStore(filepath.Join(t.TempDir(), "missing.yaml"), logger).Load()
	require.NoError(t, err)
	assert.Len(t, tax.MainVendors, 18)
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	logger := logging.NewMockLogger()
	path := filepath.Join(t.TempDir(), "nested", "taxonomy.yaml")

	original := Default()
	require.NoError(t, NewStore("", logger).Save(original, path))

	loaded, err := NewStore(path, logger).Load()
	require.NoError(t, err)

	assert.Equal(t, original.MainVendors, loaded.MainVendors)
	assert.Equal(t, original.VendorAliases, loaded.VendorAliases)
	assert.Equal(t, len(original.VendorRules), len(loaded.VendorRules))
	assert.Equal(t, len(original.Categories), len(loaded.Categories))

	// Rule order survives the round trip; it carries matching priority.
	assert.Equal(t, original.VendorRules[0].Vendor, loaded.VendorRules[0].Vendor)
}

func TestStoreLoadRejectsBadFile(t *testing.T) {
	logger := logging.NewMockLogger()
	dir := t.TempDir()

	malformed := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("main_vendors: [unterminated"), 0600))
	_, err := NewStore(malformed, logger).Load()
	assert.Error(t, err)

	// Parses but fails validation: a category without keywords.
	invalid := filepath.Join(dir, "invalid.yaml")
	content := "main_vendors:\n  - Acme\ncategories:\n  - name: Empty\n    keywords: []\n"
	require.NoError(t, os.WriteFile(invalid, []byte(content), 0600))
	_, err = NewStore(invalid, logger).Load()
	assert.Error(t, err)
}
