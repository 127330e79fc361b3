package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dbURL(t *testing.T) string {
	t.Setenv("DATABASE_URL", "")
	return "sqlite://" + filepath.Join(t.TempDir(), "users.db")
}

func TestRun_Success(t *testing.T) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	args := []string{"-user", "testuser", "-email", "test@example.com", "-password", "secret", "-cost", "4", "-db", dbURL(t)}
	require.NoError(t, run(args, new(bytes.Buffer), stdout, stderr))
	assert.Contains(t, stdout.String(), "User testuser created successfully")
}

func TestRun_DuplicateUser(t *testing.T) {
	url := dbURL(t)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	args := []string{"-user", "testuser", "-email", "test@example.com", "-password", "secret", "-cost", "4", "-db", url}
	require.NoError(t, run(args, new(bytes.Buffer), stdout, stderr), "first run should succeed")

	err := run(args, new(bytes.Buffer), stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	args = []string{"-user", "other", "-email", "test@example.com", "-password", "secret", "-cost", "4", "-db", url}
	err = run(args, new(bytes.Buffer), stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email test@example.com already exists")
}

func TestRun_MissingFlags(t *testing.T) {
	stdout := new(bytes.Buffer)

	err := run([]string{"-password", "secret"}, new(bytes.Buffer), stdout, new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required flags")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestRun_InvalidEmail(t *testing.T) {
	args := []string{"-user", "testuser", "-email", "nope", "-password", "secret", "-cost", "4", "-db", dbURL(t)}
	err := run(args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create user")
}

func TestRun_InteractivePassword(t *testing.T) {
	stdout := new(bytes.Buffer)
	stdin := bytes.NewBufferString("interactive_secret\n")

	args := []string{"-user", "interactive", "-email", "i@example.com", "-cost", "4", "-db", dbURL(t)}
	require.NoError(t, run(args, stdin, stdout, new(bytes.Buffer)))
	assert.Contains(t, stdout.String(), "Password: ")
	assert.Contains(t, stdout.String(), "User interactive created successfully")
}

func TestRun_EmptyPassword(t *testing.T) {
	args := []string{"-user", "testuser", "-email", "test@example.com", "-db", dbURL(t)}
	err := run(args, bytes.NewBufferString("   \n"), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password cannot be empty")
}
