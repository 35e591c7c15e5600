package filex

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func withConfigDir(t *testing.T, dir string, err error) {
	t.Helper()
	orig := userConfigDir
	t.Cleanup(func() { userConfigDir = orig })
	userConfigDir = func() (string, error) { return dir, err }
}

func TestEnsureConfigDir_Creates(t *testing.T) {
	tmp := t.TempDir()
	withConfigDir(t, tmp, nil)

	got, err := EnsureConfigDir("filevault")
	require.NoError(t, err)

	want := filepath.Join(tmp, "filevault")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
	}
}

func TestEnsureConfigDir_Idempotent(t *testing.T) {
	withConfigDir(t, t.TempDir(), nil)

	first, err := EnsureConfigDir("filevault")
	require.NoError(t, err)
	second, err := EnsureConfigDir("filevault")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureConfigDir_NoHome(t *testing.T) {
	withConfigDir(t, "", errors.New("$HOME is not defined"))

	_, err := EnsureConfigDir("filevault")
	require.ErrorContains(t, err, "$HOME")
}

func TestWritePrivateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")

	require.NoError(t, WritePrivateFile(path, []byte("first")))
	require.NoError(t, WritePrivateFile(path, []byte("second")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(got))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files are cleaned up")
}
