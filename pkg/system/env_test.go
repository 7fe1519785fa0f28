package system

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScriptEnv(t *testing.T) {
	t.Run("missing file yields nothing", func(t *testing.T) {
		AppFs = afero.NewMemMapFs()

		pairs, err := LoadScriptEnv("/scripts")
		require.NoError(t, err)

		assert.Empty(t, pairs)
	})

	t.Run("parses variables sorted by key", func(t *testing.T) {
		AppFs = afero.NewMemMapFs()
		content := "B_KEY=two\nA_KEY=one\n\n# comment\n"
		require.NoError(t, afero.WriteFile(AppFs, "/scripts/.env", []byte(content), 0644))

		pairs, err := LoadScriptEnv("/scripts")
		require.NoError(t, err)

		assert.Equal(t, []string{"A_KEY=one", "B_KEY=two"}, pairs)
	})

	t.Run("process environment wins over the file", func(t *testing.T) {
		AppFs = afero.NewMemMapFs()
		t.Setenv("RUNSVC_ENV_PRIORITY", "from-process")
		content := "RUNSVC_ENV_PRIORITY=from-file\nOTHER=kept\n"
		require.NoError(t, afero.WriteFile(AppFs, "/scripts/.env", []byte(content), 0644))

		pairs, err := LoadScriptEnv("/scripts")
		require.NoError(t, err)

		assert.Equal(t, []string{"OTHER=kept"}, pairs)
	})
}
