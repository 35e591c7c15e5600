package cryptox

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engines() map[string]*Engine {
	return map[string]*Engine{
		"authenticated":   NewEngine(true),
		"unauthenticated": NewEngine(false),
	}
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestEngine_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"empty":        {},
		"one byte":     {0x42},
		"block minus":  bytes.Repeat([]byte{'a'}, 15),
		"one block":    bytes.Repeat([]byte{'b'}, 16),
		"block plus":   bytes.Repeat([]byte{'c'}, 17),
		"text":         []byte("hello world"),
		"binary":       randomBytes(t, 4099),
		"invalid utf8": {0xff, 0xfe, 0x00, 0xc3, 0x28},
	}
	passwords := []string{"", "correcthorse", "ünïcödé 🔑"}

	for mode, e := range engines() {
		for name, p := range payloads {
			for _, pw := range passwords {
				key := SHA256Deriver{}.DeriveKey(pw)

				ct, err := e.Encrypt(p, key)
				require.NoError(t, err, "%s/%s", mode, name)

				got, err := e.Decrypt(ct, SHA256Deriver{}.DeriveKey(pw))
				require.NoError(t, err, "%s/%s", mode, name)
				assert.True(t, bytes.Equal(p, got), "%s/%s: round trip mismatch", mode, name)
			}
		}
	}
}

func TestEngine_CiphertextLayout(t *testing.T) {
	key := SHA256Deriver{}.DeriveKey("correcthorse")

	ct, err := NewEngine(false).Encrypt([]byte("hello world"), key)
	require.NoError(t, err)
	assert.Len(t, ct, ivSize+16)

	ct, err = NewEngine(true).Encrypt(bytes.Repeat([]byte{1}, 16), key)
	require.NoError(t, err)
	assert.Len(t, ct, ivSize+32+tagSize)
}

func TestEngine_NonDeterministic(t *testing.T) {
	for mode, e := range engines() {
		key := SHA256Deriver{}.DeriveKey("correcthorse")
		p := []byte("hello world")

		a, err := e.Encrypt(p, key)
		require.NoError(t, err)
		b, err := e.Encrypt(p, key)
		require.NoError(t, err)

		assert.NotEqual(t, a, b, mode)

		pa, err := e.Decrypt(a, key)
		require.NoError(t, err)
		pb, err := e.Decrypt(b, key)
		require.NoError(t, err)
		assert.Equal(t, p, pa)
		assert.Equal(t, p, pb)
	}
}

func TestEngine_KnownVectors(t *testing.T) {
	iv, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	key := SHA256Deriver{}.DeriveKey("correcthorse")

	tests := []struct {
		name          string
		authenticated bool
		want          string
	}{
		{
			name: "unauthenticated",
			want: "000102030405060708090a0b0c0d0e0f" + "a1849899b0e20fac477eb436bbeb8ff2",
		},
		{
			name:          "authenticated",
			authenticated: true,
			want: "000102030405060708090a0b0c0d0e0f" + "1522a8e94ddc4b3130752d88d326ed3a" +
				"fb83424d436eba48e4fa326f03fb87277b9e9844374ce3566e1acdaabf7815cc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(tt.authenticated)
			e.random = bytes.NewReader(iv)

			ct, err := e.Encrypt([]byte("hello world"), key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(ct))

			raw, _ := hex.DecodeString(tt.want)
			got, err := NewEngine(tt.authenticated).Decrypt(raw, key)
			require.NoError(t, err)
			assert.Equal(t, "hello world", string(got))
		})
	}
}

func TestEngine_WrongKeyRejected(t *testing.T) {
	e := NewEngine(true)
	p := []byte("hello world")

	ct, err := e.Encrypt(p, SHA256Deriver{}.DeriveKey("correcthorse"))
	require.NoError(t, err)

	_, err = e.Decrypt(ct, SHA256Deriver{}.DeriveKey("wrongpassword"))
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEngine_WrongKeyUnauthenticated(t *testing.T) {
	// Without a MAC a wrong key is only caught by the padding check, which
	// a random block passes with probability ~1/256. Either way the
	// original plaintext must never come back.
	e := NewEngine(false)
	p := []byte("hello world")

	for i := 0; i < 32; i++ {
		ct, err := e.Encrypt(p, SHA256Deriver{}.DeriveKey("correcthorse"))
		require.NoError(t, err)

		got, err := e.Decrypt(ct, SHA256Deriver{}.DeriveKey("wrongpassword"))
		if err != nil {
			assert.ErrorIs(t, err, ErrDecryptionFailed)
			continue
		}
		assert.NotEqual(t, p, got)
	}
}

func TestEngine_MalformedInput(t *testing.T) {
	key := SHA256Deriver{}.DeriveKey("correcthorse")

	for mode, e := range engines() {
		good, err := e.Encrypt([]byte("hello world"), key)
		require.NoError(t, err)

		tampered := append([]byte(nil), good...)
		tampered[ivSize] ^= 0x01

		cases := map[string][]byte{
			"nil":           nil,
			"short":         good[:10],
			"iv only":       good[:ivSize],
			"not aligned":   append(append([]byte(nil), good...), 0x00),
			"truncated":     good[:len(good)-1],
			"tampered body": tampered,
		}

		for name, in := range cases {
			got, err := e.Decrypt(in, key)
			if mode == "unauthenticated" && name == "tampered body" {
				// CBC without a MAC may still unpad a flipped first block
				if err == nil {
					assert.NotEqual(t, []byte("hello world"), got)
				}
				continue
			}
			assert.True(t, errors.Is(err, ErrDecryptionFailed), "%s/%s: got %v", mode, name, err)
		}
	}
}

func TestEngine_InvalidKeySize(t *testing.T) {
	e := NewEngine(true)
	_, err := e.Encrypt([]byte("x"), DerivedKey("short"))
	require.ErrorIs(t, err, ErrInvalidKeySize)

	for _, authenticated := range []bool{true, false} {
		_, err = NewEngine(authenticated).Decrypt(make([]byte, 64), DerivedKey("short"))
		require.ErrorIs(t, err, ErrDecryptionFailed)
		require.ErrorIs(t, err, ErrInvalidKeySize)
	}
}

func TestPKCS7(t *testing.T) {
	for n := 0; n <= 33; n++ {
		in := bytes.Repeat([]byte{7}, n)
		padded := pkcs7Pad(in, 16)
		require.Zero(t, len(padded)%16)
		require.Greater(t, len(padded), n)

		out, ok := pkcs7Unpad(padded, 16)
		require.True(t, ok)
		require.Equal(t, in, out)
	}

	bad := [][]byte{
		nil,
		make([]byte, 15),
		append(bytes.Repeat([]byte{1}, 15), 0),
		append(bytes.Repeat([]byte{1}, 15), 17),
		append(bytes.Repeat([]byte{1}, 14), 3, 2),
	}
	for _, b := range bad {
		_, ok := pkcs7Unpad(b, 16)
		assert.False(t, ok, "%x", b)
	}
}
