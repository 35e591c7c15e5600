// Package cli implements the FileVault command-line client.
//
// Each invocation runs one command:
//
//	register | login | logout | ping
//	upload <path>
//	list
//	download <id> [path]
//	encrypt <id> | decrypt <id>
//	delete <id>
//
// Login caches the access token on disk; commands that touch files load it
// from there. Passwords are read from the terminal without echo.
package cli
