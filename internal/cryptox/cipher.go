package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrDecryptionFailed is the only error Decrypt reports for bad input. A
// wrong key, a truncated payload, a forged tag and broken padding all look
// the same to the caller.
var ErrDecryptionFailed = errors.New("decryption failed")

// ErrInvalidKeySize is returned for keys that are not KeySize bytes long.
// Decrypt wraps it together with ErrDecryptionFailed.
var ErrInvalidKeySize = errors.New("invalid key size")

const (
	ivSize  = aes.BlockSize
	tagSize = sha256.Size
)

var hkdfInfo = []byte("filevault/aes-256-cbc+hmac-sha256")

// Engine encrypts payloads with AES-256-CBC and PKCS#7 padding under a
// fresh random IV.
//
// Output layout:
//
//	IV(16) || ciphertext               unauthenticated
//	IV(16) || ciphertext || HMAC(32)   authenticated (encrypt-then-MAC)
//
// In authenticated mode the derived key is expanded with HKDF-SHA256 into
// separate encryption and MAC keys.
type Engine struct {
	authenticated bool
	random        io.Reader
}

func NewEngine(authenticated bool) *Engine {
	return &Engine{authenticated: authenticated, random: rand.Reader}
}

// Authenticated reports whether payloads carry an HMAC tag.
func (e *Engine) Authenticated() bool {
	return e.authenticated
}

func (e *Engine) subkeys(key DerivedKey) (encKey, macKey []byte, err error) {
	if len(key) != KeySize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrInvalidKeySize, len(key))
	}
	if !e.authenticated {
		return append([]byte(nil), key...), nil, nil
	}
	okm := make([]byte, 2*KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, hkdfInfo), okm); err != nil {
		return nil, nil, err
	}
	return okm[:KeySize], okm[KeySize:], nil
}

// Encrypt seals plaintext, which may be empty or arbitrary binary data.
func (e *Engine) Encrypt(plaintext []byte, key DerivedKey) ([]byte, error) {
	encKey, macKey, err := e.subkeys(key)
	if err != nil {
		return nil, err
	}
	defer wipe(encKey, macKey)

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)

	out := make([]byte, ivSize+len(padded), ivSize+len(padded)+tagSize)
	iv := out[:ivSize]
	if _, err := io.ReadFull(e.random, iv); err != nil {
		return nil, fmt.Errorf("read iv: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[ivSize:], padded)

	if e.authenticated {
		mac := hmac.New(sha256.New, macKey)
		mac.Write(out)
		out = mac.Sum(out)
	}

	return out, nil
}

// Decrypt opens a payload produced by Encrypt with the same key and mode.
func (e *Engine) Decrypt(payload []byte, key DerivedKey) ([]byte, error) {
	encKey, macKey, err := e.subkeys(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	defer wipe(encKey, macKey)

	if e.authenticated {
		if len(payload) < tagSize {
			return nil, ErrDecryptionFailed
		}
		tag := payload[len(payload)-tagSize:]
		payload = payload[:len(payload)-tagSize]

		mac := hmac.New(sha256.New, macKey)
		mac.Write(payload)
		if !hmac.Equal(mac.Sum(nil), tag) {
			return nil, ErrDecryptionFailed
		}
	}

	if len(payload) < ivSize+aes.BlockSize || len(payload)%aes.BlockSize != 0 {
		return nil, ErrDecryptionFailed
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, err
	}

	iv, ct := payload[:ivSize], payload[ivSize:]
	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ct)

	out, ok := pkcs7Unpad(plain, aes.BlockSize)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return out, nil
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	out := make([]byte, len(b)+n)
	copy(out, b)
	for i := len(b); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, bool) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, false
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize {
		return nil, false
	}
	var bad byte
	for _, c := range b[len(b)-n:] {
		bad |= c ^ byte(n)
	}
	if bad != 0 {
		return nil, false
	}
	return b[:len(b)-n], true
}

func wipe(bufs ...[]byte) {
	for _, b := range bufs {
		for i := range b {
			b[i] = 0
		}
	}
}
