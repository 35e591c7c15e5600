package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/filevault/internal/client/client"
	"github.com/dmitrijs2005/filevault/internal/common"
)

// getSimpleText and getPassword point to the interactive input helpers and
// are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) ping(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) credentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

func (a *App) register(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Register(ctx, userName, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success! Run 'login' to sign in.")
	return nil
}

func (a *App) login(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.api.Login(ctx, userName, string(password))
	if err != nil {
		return err
	}

	if err := a.tokens.Save(token); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", userName)
	return nil
}

func (a *App) logout() error {
	if err := a.tokens.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) uploadFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	slot, err := a.api.RequestUpload(ctx)
	if err != nil {
		return err
	}

	if err := a.upload(ctx, slot.URL, data); err != nil {
		return err
	}

	id, err := a.api.StoreFile(ctx, slot.StorageKey, filepath.Base(path))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Uploaded %s as %s\n", filepath.Base(path), id)
	return nil
}

func (a *App) list(ctx context.Context) error {
	files, err := a.api.ListFiles(ctx)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(a.out, "No files")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tENCRYPTED\tCREATED")
	for _, f := range files {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", f.ID, f.Name, f.IsEncrypted, f.CreatedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}

// downloadFile saves the file under target, or under its stored name in
// the working directory when target is empty.
func (a *App) downloadFile(ctx context.Context, fileID, target string) error {
	f, err := a.api.GetFile(ctx, fileID)
	if err != nil {
		return err
	}

	data, err := a.download(ctx, f.URL)
	if err != nil {
		return err
	}

	if target == "" {
		target = filepath.Base(f.Name)
	}

	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	fmt.Fprintf(a.out, "Saved %s (%d bytes)\n", target, len(data))
	return nil
}

func (a *App) transform(ctx context.Context, fileID string, direction client.Direction) error {
	password, err := getPassword("File password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.api.Transform(ctx, fileID, string(password), direction)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created %s\n", id)
	return nil
}

func (a *App) deleteFile(ctx context.Context, fileID string) error {
	if err := a.api.DeleteFile(ctx, fileID); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}
