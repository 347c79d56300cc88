package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("SITE_TITLE", "Depot")

	out, err := execute(t, "render", "customer")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Customer | Depot</title>")
	assert.Contains(t, out, "<h1>Customer</h1><p>Welcome to the customer page!</p>")
}

func TestRenderCommand_TitleFlag(t *testing.T) {
	out, err := execute(t, "render", "customer", "--title", "Fleet")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Customer | Fleet</title>")
}

func TestRenderCommand_UnknownPage(t *testing.T) {
	_, err := execute(t, "render", "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown page "admin"`)
	assert.Contains(t, err.Error(), "customer")
}

func TestRenderCommand_RequiresPage(t *testing.T) {
	_, err := execute(t, "render")
	assert.Error(t, err)
}

func TestStatusesCommand(t *testing.T) {
	out, err := execute(t, "statuses")
	require.NoError(t, err)

	for _, want := range []string{
		"OPERATIONAL", "IN_SERVICE", "UNDER_MAINTENANCE", "OUT_OF_SERVICE",
		"SCHEDULED", "CANCELED", "IN_PROGRESS", "COMPLETED",
	} {
		assert.Contains(t, out, "  "+want+"\n")
	}
	assert.True(t, strings.Index(out, "bus:") < strings.Index(out, "service:"))
}

func TestServeCommand_InvalidConfig(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	_, err := execute(t, "serve")
	assert.Error(t, err)
}

func TestServeCommand_InvalidPortFlag(t *testing.T) {
	for _, port := range []string{"0", "-1", "70000"} {
		t.Run(port, func(t *testing.T) {
			_, err := execute(t, "serve", "--port="+port)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid PORT")
		})
	}
}
