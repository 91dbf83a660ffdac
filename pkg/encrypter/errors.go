package encrypter

import "errors"

var (
	ErrInvalidKeyLength  = errors.New("encrypter: key must be 16, 24 or 32 bytes")
	ErrInvalidCiphertext = errors.New("encrypter: ciphertext is malformed")
)
