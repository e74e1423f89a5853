package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "dash-etl", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotNil(t, Cmd.PersistentPreRunE)
}

func TestInitRegistersPersistentFlags(t *testing.T) {
	Init()

	for _, name := range []string{"input", "reference", "output", "sheet"} {
		flag := Cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "missing persistent flag %s", name)
	}
	assert.Equal(t, "i", Cmd.PersistentFlags().Lookup("input").Shorthand)
	assert.Equal(t, "r", Cmd.PersistentFlags().Lookup("reference").Shorthand)
	assert.Equal(t, "o", Cmd.PersistentFlags().Lookup("output").Shorthand)
}
