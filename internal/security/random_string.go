package security

import (
	"crypto/rand"
	"errors"
	"io"
)

var (
	ErrNegativeLength  = errors.New("length must be non-negative")
	ErrInvalidAlphabet = errors.New("alphabet must hold between 1 and 256 ASCII characters")
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand. Bytes past the largest multiple of len(alphabet) are
// discarded so no character is favoured.
func RandomString(length int, alphabet string) (string, error) {
	return randomString(rand.Reader, length, alphabet)
}

func randomString(source io.Reader, length int, alphabet string) (string, error) {
	if length < 0 {
		return "", ErrNegativeLength
	}
	if len(alphabet) == 0 || len(alphabet) > 256 || !isASCII(alphabet) {
		return "", ErrInvalidAlphabet
	}
	if length == 0 {
		return "", nil
	}

	size := len(alphabet)
	limit := 256 - 256%size
	value := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(value) < length {
		if _, err := io.ReadFull(source, buffer); err != nil {
			return "", err
		}
		for _, sample := range buffer {
			if int(sample) >= limit {
				continue
			}
			value = append(value, alphabet[int(sample)%size])
			if len(value) == length {
				break
			}
		}
	}
	return string(value), nil
}

func isASCII(value string) bool {
	for index := 0; index < len(value); index++ {
		if value[index] > 0x7f {
			return false
		}
	}
	return true
}
