package crypto

// CipherService protects stored account passwords. It knows nothing about
// the database or the UI; its only task is turning password text into an
// opaque Base64 blob and back.
type CipherService interface {
	// Encrypt encrypts plaintext with the derived key via AES-GCM and
	// returns a Base64 (standard encoding) string of nonce ‖ ciphertext.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Returns an error if the blob is malformed,
	// was produced under a different secret, or fails the GCM
	// authentication-tag check.
	Decrypt(encryptedB64 string) (string, error)
}
