// Package cryptox implements password based key derivation and the symmetric
// cipher used to encrypt stored files.
package cryptox

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// KeySize is the length of every derived key: an AES-256 key.
const KeySize = 32

// DerivedKey is secret key material computed from a password. It is never
// persisted and should be wiped once the operation that needed it is over.
type DerivedKey []byte

// Wipe zeroes the key in place.
func (k DerivedKey) Wipe() {
	for i := range k {
		k[i] = 0
	}
}

// KeyDeriver turns a password into a KeySize-byte key. Implementations are
// deterministic: the same password always yields the same key, so a file
// can be decrypted with nothing but the password it was encrypted with.
type KeyDeriver interface {
	DeriveKey(password string) DerivedKey
	Name() string
}

// Supported KDF names.
const (
	KDFSHA256   = "sha256"
	KDFArgon2id = "argon2id"
	KDFPBKDF2   = "pbkdf2"
)

// NewKeyDeriver returns the deriver registered under name. Argon2id and
// PBKDF2 need a fixed application salt; sha256 ignores it.
func NewKeyDeriver(name string, salt []byte) (KeyDeriver, error) {
	switch name {
	case KDFSHA256, "":
		return SHA256Deriver{}, nil
	case KDFArgon2id:
		if len(salt) == 0 {
			return nil, fmt.Errorf("kdf %s: salt must not be empty", name)
		}
		return Argon2idDeriver{Salt: salt}, nil
	case KDFPBKDF2:
		if len(salt) == 0 {
			return nil, fmt.Errorf("kdf %s: salt must not be empty", name)
		}
		return PBKDF2Deriver{Salt: salt}, nil
	default:
		return nil, fmt.Errorf("unknown kdf %q", name)
	}
}

// SHA256Deriver hashes the password with SHA-256. Fast, so only as strong
// as the password itself, but compatible with files encrypted by earlier
// releases.
type SHA256Deriver struct{}

func (SHA256Deriver) Name() string { return KDFSHA256 }

func (SHA256Deriver) DeriveKey(password string) DerivedKey {
	sum := sha256.Sum256([]byte(password))
	return DerivedKey(sum[:])
}

// Argon2idDeriver stretches the password with Argon2id using a fixed salt.
type Argon2idDeriver struct {
	Salt []byte
}

func (Argon2idDeriver) Name() string { return KDFArgon2id }

func (d Argon2idDeriver) DeriveKey(password string) DerivedKey {
	return argon2.IDKey([]byte(password), d.Salt, 1, 64*1024, 4, KeySize)
}

// PBKDF2Deriver runs PBKDF2-HMAC-SHA256 with a fixed salt.
type PBKDF2Deriver struct {
	Salt []byte
	// Iterations defaults to DefaultPBKDF2Iterations when zero.
	Iterations int
}

const DefaultPBKDF2Iterations = 600_000

func (PBKDF2Deriver) Name() string { return KDFPBKDF2 }

func (d PBKDF2Deriver) DeriveKey(password string) DerivedKey {
	iter := d.Iterations
	if iter <= 0 {
		iter = DefaultPBKDF2Iterations
	}
	return pbkdf2.Key([]byte(password), d.Salt, iter, KeySize, sha256.New)
}
