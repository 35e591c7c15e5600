package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/filevault/internal/client/client"
	"github.com/dmitrijs2005/filevault/internal/client/config"
	"github.com/dmitrijs2005/filevault/internal/filex"
	"github.com/dmitrijs2005/filevault/internal/netx"
)

const appName = "filevault"

type tokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

type App struct {
	config *config.Config
	api    client.Client
	tokens tokenStore
	reader *bufio.Reader
	out    io.Writer

	upload   func(ctx context.Context, url string, data []byte) error
	download func(ctx context.Context, url string) ([]byte, error)
}

func NewApp(c *config.Config) (*App, error) {
	tokenFile := c.TokenFile
	if tokenFile == "" {
		dir, err := filex.EnsureConfigDir(appName)
		if err != nil {
			return nil, err
		}
		tokenFile = filepath.Join(dir, "token")
	}

	apiClient, err := client.NewFileVaultClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{
		config:   c,
		api:      apiClient,
		tokens:   client.NewTokenStore(tokenFile),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		upload:   netx.UploadToPresignedURL,
		download: netx.DownloadFromPresignedURL,
	}, nil
}

func (a *App) Close() error {
	return a.api.Close()
}

// Run executes the command named by args[0] under the configured timeout.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("no command given")
	}

	if a.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.RequestTimeout)
		defer cancel()
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "help":
		a.usage()
		return nil
	case "ping":
		return a.ping(ctx)
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "logout":
		return a.logout()
	}

	if err := a.authenticate(); err != nil {
		return err
	}

	switch cmd {
	case "upload":
		if len(rest) != 1 {
			return usageError("upload <path>")
		}
		return a.uploadFile(ctx, rest[0])
	case "list":
		return a.list(ctx)
	case "download":
		if len(rest) < 1 || len(rest) > 2 {
			return usageError("download <id> [path]")
		}
		target := ""
		if len(rest) == 2 {
			target = rest[1]
		}
		return a.downloadFile(ctx, rest[0], target)
	case "encrypt":
		if len(rest) != 1 {
			return usageError("encrypt <id>")
		}
		return a.transform(ctx, rest[0], client.DirectionEncrypt)
	case "decrypt":
		if len(rest) != 1 {
			return usageError("decrypt <id>")
		}
		return a.transform(ctx, rest[0], client.DirectionDecrypt)
	case "delete":
		if len(rest) != 1 {
			return usageError("delete <id>")
		}
		return a.deleteFile(ctx, rest[0])
	default:
		a.usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (a *App) authenticate() error {
	token, err := a.tokens.Load()
	if err != nil {
		return fmt.Errorf("%w, run 'login' first", err)
	}
	a.api.SetAccessToken(token)
	return nil
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Usage: filevault-cli [-a addr] <command> [args]")
	fmt.Fprintln(a.out, "Commands: register, login, logout, ping, upload <path>, list,")
	fmt.Fprintln(a.out, "          download <id> [path], encrypt <id>, decrypt <id>, delete <id>")
}

func usageError(s string) error {
	return fmt.Errorf("usage: %s", s)
}
