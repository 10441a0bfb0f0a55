package encrypter

// PBKDF2 parameters for deriving the AES-256 key from the configured passphrase.
const (
	derivedKeyLen = 32
	keyIterations = 4096
)

// The salt only needs to be stable across restarts so ciphertexts stay readable.
var keySalt = []byte("portal-srv/phi-at-rest/v1")

type implEncrypter struct {
	key []byte
}
