/*
File    : golox/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRun_FileMode_SuccessfulScriptExitsZero(t *testing.T) {
	path := writeScript(t, `print 1 + 2;`)
	var stdout, stderr bytes.Buffer

	code := run([]string{"golox", path}, nil, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "3\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_FileMode_LexErrorExits65(t *testing.T) {
	path := writeScript(t, "var a = @;")
	var stdout, stderr bytes.Buffer

	code := run([]string{"golox", path}, nil, &stdout, &stderr)

	assert.Equal(t, exitDataErr, code)
	assert.Contains(t, stderr.String(), "Erro")
}

func TestRun_FileMode_ParseErrorExits65(t *testing.T) {
	path := writeScript(t, "var a = 1")
	var stdout, stderr bytes.Buffer

	code := run([]string{"golox", path}, nil, &stdout, &stderr)

	assert.Equal(t, exitDataErr, code)
}

func TestRun_FileMode_RuntimeErrorExits70(t *testing.T) {
	path := writeScript(t, "print 1 / 0;")
	var stdout, stderr bytes.Buffer

	code := run([]string{"golox", path}, nil, &stdout, &stderr)

	assert.Equal(t, exitSoftware, code)
	assert.Contains(t, stderr.String(), "Division by zero")
}

func TestRun_FileMode_MissingFileExits74(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"golox", filepath.Join(t.TempDir(), "missing.lox")}, nil, &stdout, &stderr)

	assert.Equal(t, exitNoInput, code)
}

func TestRun_TooManyArgsExits64(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"golox", "a.lox", "b.lox"}, nil, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "Usage")
}
