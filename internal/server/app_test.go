package server

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/filevault/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = ""
	c.BlobBackend = config.BlobBackendMemory
	c.EndpointAddrGRPC = "127.0.0.1:0"
	return c
}

func TestNewApp_MemoryBackends(t *testing.T) {
	var logs bytes.Buffer

	app, err := NewApp(context.Background(), memoryConfig(), &logs)
	require.NoError(t, err)
	require.NotNil(t, app.server)
	assert.Nil(t, app.db)
	assert.Contains(t, logs.String(), `"metadata":"memory"`)
	assert.Contains(t, logs.String(), `"kdf":"sha256"`)
}

func TestNewApp_InvalidConfig(t *testing.T) {
	c := memoryConfig()
	c.KDF = "rot13"

	_, err := NewApp(context.Background(), c, &bytes.Buffer{})
	require.ErrorContains(t, err, "invalid config")
}

func TestNewApp_DatabaseError(t *testing.T) {
	orig := openPostgres
	t.Cleanup(func() { openPostgres = orig })
	openPostgres = func(ctx context.Context, dsn string) (*sql.DB, error) {
		return nil, errors.New("connection refused")
	}

	c := memoryConfig()
	c.DatabaseDSN = "postgres://nowhere"

	_, err := NewApp(context.Background(), c, &bytes.Buffer{})
	require.ErrorContains(t, err, "connection refused")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig(), &bytes.Buffer{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}
