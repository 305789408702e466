// Package password generates one-time dashboard passwords and hashes them
// for storage.
package password

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"gymdash/internal/helpers"
)

const (
	upper   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lower   = "abcdefghjkmnpqrstuvwxyz"
	digits  = "23456789"
	symbols = "!@#$%"
	all     = upper + lower + digits + symbols

	// MinLength is the shortest password Generate produces: one of each class.
	MinLength = 4
)

// Cost is the bcrypt cost used by Hash. Tests lower it to bcrypt.MinCost.
var Cost = bcrypt.DefaultCost

// Generate returns a random password of the given length (at least
// MinLength) holding at least one upper, lower, digit and symbol character.
func Generate(length int) string {
	if length < MinLength {
		length = MinLength
	}

	buf := make([]byte, 0, length)
	buf = append(buf,
		upper[helpers.RandomInt(len(upper))],
		lower[helpers.RandomInt(len(lower))],
		digits[helpers.RandomInt(len(digits))],
		symbols[helpers.RandomInt(len(symbols))],
	)
	for len(buf) < length {
		buf = append(buf, all[helpers.RandomInt(len(all))])
	}

	// Fisher-Yates
	for i := len(buf) - 1; i > 0; i-- {
		j := helpers.RandomInt(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

func Hash(plain string) (string, error) {
	const op = "password.Hash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

func Check(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// Classes reports which character classes p contains.
func Classes(p string) (hasUpper, hasLower, hasDigit, hasSymbol bool) {
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(symbols, r):
			hasSymbol = true
		}
	}
	return
}
