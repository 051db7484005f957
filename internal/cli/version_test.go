package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/chlog/internal/version"
)

func TestVersionCmd(t *testing.T) {
	cmd := findCommand("version")
	require.NotNil(t, cmd)

	tc, stdout, _ := newTestCmd()
	require.NoError(t, cmd.RunE(tc, nil))
	assert.Contains(t, stdout.String(), "chlog "+version.Version)
	assert.Contains(t, stdout.String(), "commit:")
}
