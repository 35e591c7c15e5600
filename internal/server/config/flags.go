package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/filevault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string        gRPC bind address (e.g., ":50051")
//	-d string        PostgreSQL DSN, empty for in-memory metadata
//	-s string        JWT HMAC secret key
//	-t int           access token validity, minutes
//	-u string        S3 root user
//	-p string        S3 root password
//	-b string        S3 bucket name
//	-g string        S3 region
//	-e string        S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-x int           presigned URL expiry, minutes
//	-blob string     blob backend: s3 or memory
//	-kdf string      key derivation: sha256, argon2id or pbkdf2
//	-kdf-salt string application salt for argon2id and pbkdf2
//	-authenticated   append an HMAC tag to ciphertexts (use -authenticated=false to disable)
//	-log-level string
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config flag.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-t", "-u", "-p", "-b", "-g", "-e", "-x",
		"-blob", "-kdf", "-kdf-salt", "-authenticated", "-log-level",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	presignExpiry := fs.Int("x", int(config.PresignExpiry.Minutes()), "presigned URL expiry (in minutes)")

	fs.StringVar(&config.BlobBackend, "blob", config.BlobBackend, "blob backend (s3|memory)")
	fs.StringVar(&config.KDF, "kdf", config.KDF, "key derivation function (sha256|argon2id|pbkdf2)")
	fs.StringVar(&config.KDFSalt, "kdf-salt", config.KDFSalt, "application salt for argon2id/pbkdf2")
	fs.BoolVar(&config.AuthenticatedCipher, "authenticated", config.AuthenticatedCipher, "append HMAC-SHA256 tag to ciphertexts")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.PresignExpiry = time.Duration(*presignExpiry) * time.Minute
}
