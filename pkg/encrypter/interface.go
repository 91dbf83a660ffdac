package encrypter

// Encrypter provides symmetric encryption and password hashing.
// Implementations are safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	EncryptBytesToString(data []byte) (string, error)
	DecryptStringToBytes(ciphertext string) ([]byte, error)
	HashPassword(password string) (string, error)
	ComparePassword(hashed, password string) error
}

// New creates a new Encrypter with the given AES key (16, 24 or 32 bytes).
func New(key string) Encrypter {
	return &implEncrypter{key: key}
}
