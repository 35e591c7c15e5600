package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenStore_RoundTrip(t *testing.T) {
	s := NewTokenStore(filepath.Join(t.TempDir(), "filevault", "token"))

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, s.Save("tok-1"))
	got, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "tok-1", got)

	require.NoError(t, s.Clear())
	_, err = s.Load()
	require.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, s.Clear(), "clearing twice is fine")
}

func TestTokenStore_BlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	_, err := NewTokenStore(path).Load()
	require.ErrorIs(t, err, ErrNotLoggedIn)
}
