// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keySalt domain-separates the password-storage key from any other key that
// might be derived from the same secret. It is not itself a secret: the
// security of the scheme rests entirely on the configured secret.
var keySalt = []byte("go-account-mgr/password-cipher/v1")

// cipherService is the private implementation of [CipherService].
type cipherService struct {
	key []byte
}

// NewCipherService derives a 256-bit encryption key from secret using
// Argon2id with the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// The key is derived once at startup and kept in memory for the lifetime of
// the process.
func NewCipherService(secret string) CipherService {
	key := argon2.IDKey(
		[]byte(secret),
		keySalt,
		1,
		64*1024, // 64 MiB
		4,
		32, // 256 bits
	)
	return &cipherService{key: key}
}

// Encrypt implements [CipherService]. A random 12-byte nonce is prepended to
// the ciphertext so that the decryption side can locate it:
// blob = nonce ‖ ciphertext. Returns an error if cipher creation or the
// random nonce read fails.
func (c *cipherService) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	// Prepend the nonce so Decrypt can split it out without side-channel.
	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, sealed...)), nil
}

// Decrypt implements [CipherService]. It unwraps the blob produced by
// [cipherService.Encrypt]. The blob must be at least as long as the GCM
// nonce (12 bytes). Returns the plaintext, or an error if the blob is too
// short, the key is wrong, or the ciphertext is corrupted
// (authentication-tag mismatch).
func (c *cipherService) Decrypt(encryptedB64 string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %w", err)
	}

	return string(plaintext), nil
}
