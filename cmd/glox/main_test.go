package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFileReportsParseErrorsWithoutExecuting(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.lox")
	assert.NoError(t, err)
	_, err = f.WriteString("var x = ;")
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	assert.Error(t, checkFile(f.Name()))
}

func TestCheckFileAcceptsWellFormedScript(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "ok-*.lox")
	assert.NoError(t, err)
	_, err = f.WriteString("var x = 1; print x;")
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	assert.NoError(t, checkFile(f.Name()))
}
