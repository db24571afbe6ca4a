package ui

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureStatus(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	origOut, origErr := Out, ErrOut
	Out, ErrOut = io.Writer(&out), io.Writer(&errOut)
	t.Cleanup(func() { Out, ErrOut = origOut, origErr })
	return &out, &errOut
}

func TestWarning(t *testing.T) {
	out, errOut := captureStatus(t)

	Warning("stdout is not a terminal, showing the %s banner", "static")

	assert.Contains(t, out.String(), "⚠")
	assert.Contains(t, out.String(), "showing the static banner")
	assert.Empty(t, errOut.String())
}

func TestError(t *testing.T) {
	out, errOut := captureStatus(t)

	Error("invalid width %d", -1)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "✖")
	assert.Contains(t, errOut.String(), "invalid width -1")
}
