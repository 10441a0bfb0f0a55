package encrypter

// Encrypter provides symmetric encryption for fields stored at rest.
// Implementations are safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	EncryptBytesToString(data []byte) (string, error)
	DecryptStringToBytes(ciphertext string) ([]byte, error)
}

// New creates a new Encrypter. The AES key is derived from the passphrase,
// so the passphrase may be any non-empty length.
func New(passphrase string) Encrypter {
	e := &implEncrypter{}
	if passphrase != "" {
		e.key = deriveKey(passphrase)
	}
	return e
}
