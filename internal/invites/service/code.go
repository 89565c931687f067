package service

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"
)

const (
	// CodeAlphabet leaves out I, L, O, 0 and 1 so codes survive being read
	// aloud or copied off a screen.
	CodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	CodeLength   = 8
)

var alphabetSize = big.NewInt(int64(len(CodeAlphabet)))

// GenerateInviteCode draws CodeLength symbols uniformly from CodeAlphabet
// using crypto/rand.
func GenerateInviteCode() (string, error) {
	return generateCode(rand.Reader)
}

func generateCode(r io.Reader) (string, error) {
	b := make([]byte, CodeLength)
	for i := range b {
		n, err := rand.Int(r, alphabetSize)
		if err != nil {
			return "", err
		}
		b[i] = CodeAlphabet[n.Int64()]
	}
	return string(b), nil
}

// NormalizeCode trims whitespace and uppercases user input.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// IsValidCodeFormat reports whether code could have been generated by
// GenerateInviteCode. It expects normalized input.
func IsValidCodeFormat(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(CodeAlphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}
