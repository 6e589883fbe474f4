package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	cmd := newRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"auth", "dashboard", "import", "report", "version"})
	assert.NotNil(t, cmd.RunE, "dashboard is the default command")

	auth, _, err := cmd.Find([]string{"auth", "sheets"})
	require.NoError(t, err)
	assert.Equal(t, "sheets", auth.Name())
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := versionCmd()
	cmd.SetOut(&buf)

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Equal(t, "pedal dev\n", buf.String())
}
