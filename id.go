package gtable

import (
	"crypto/rand"
	"fmt"
)

// Generated table identifier lengths.
const (
	DefaultIDLength = 10
	MinIDLength     = 4
	MaxIDLength     = 64
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomID returns an n-character lowercase alphanumeric token.
func randomID(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	// 252 is the largest multiple of 36 below 256; higher bytes would bias the alphabet.
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generate table id: %w", err)
		}
		for _, b := range buf {
			if b >= 252 {
				continue
			}
			out = append(out, idAlphabet[int(b)%len(idAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
