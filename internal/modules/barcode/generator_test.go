package barcode

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^\d{4,6}$`)

func TestShortCodeIsDeterministic(t *testing.T) {
	a := ShortCode("a3c52c89-7b4e-4f7e-9a3b-0c1d2e3f4a5b", "XL")
	b := ShortCode("a3c52c89-7b4e-4f7e-9a3b-0c1d2e3f4a5b", "XL")
	assert.Equal(t, a, b)
}

func TestShortCodeFormat(t *testing.T) {
	ids := []string{
		"a3c52c89-7b4e-4f7e-9a3b-0c1d2e3f4a5b",
		"00000000-0000-0000-0000-000000000000",
		"ffffffff-ffff-ffff-ffff-ffffffffffff",
		"robe-été-2026",
	}
	sizes := []string{"M", "L", "XL", "2XL", "3XL", "4XL", "5XL", "Taille Unique", ""}

	for _, id := range ids {
		for _, size := range sizes {
			code := ShortCode(id, size)
			require.Regexp(t, codePattern, code, "id=%s size=%s", id, size)
		}
	}
}

func TestShortCodeVariesBySize(t *testing.T) {
	id := "a3c52c89-7b4e-4f7e-9a3b-0c1d2e3f4a5b"
	seen := map[string][]string{}
	for _, size := range []string{"M", "L", "XL", "2XL"} {
		code := ShortCode(id, size)
		seen[code] = append(seen[code], size)
	}
	// Collisions are permitted by the derivation, but the common size run of
	// a single product should not collapse to one code.
	assert.Greater(t, len(seen), 1)
}

func TestShortCodePadsShortValues(t *testing.T) {
	// Any code shorter than four digits must be left-padded with zeros.
	for _, size := range []string{"S", "M", "L"} {
		code := ShortCode("x", size)
		assert.GreaterOrEqual(t, len(code), 4, "size=%s code=%s", size, code)
		assert.LessOrEqual(t, len(code), 6, "size=%s code=%s", size, code)
	}
}
