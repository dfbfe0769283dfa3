// Package hexcodec converts between raw bytes and the space separated,
// upper-case hex token text shown by the editor.
package hexcodec

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidToken = errors.New("invalid hex token")

// TokenError reports the first token that is not a two digit upper-case hex
// string. It matches ErrInvalidToken with errors.Is.
type TokenError struct {
	Index int
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("invalid hex token %q at index %d", e.Token, e.Index)
}

func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}

const digits = "0123456789ABCDEF"

var byteToHex = func() (t [256]string) {
	for i := range t {
		t[i] = string([]byte{digits[i>>4], digits[i&0x0F]})
	}
	return t
}()

// Token returns the two character token for b.
func Token(b byte) string {
	return byteToHex[b]
}

// IsDigit reports whether c is an upper-case hex digit.
func IsDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
}

// Encode never fails; an empty input yields an empty string.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(data)*3 - 1)
	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(byteToHex[v])
	}
	return b.String()
}

// Cache maps each of the 256 canonical tokens to its byte value.
type Cache struct {
	values map[string]byte
}

func NewCache() *Cache {
	c := &Cache{values: make(map[string]byte, len(byteToHex))}
	for i, tok := range byteToHex {
		c.values[tok] = byte(i)
	}
	return c
}

func (c *Cache) Lookup(token string) (byte, bool) {
	v, ok := c.values[token]
	return v, ok
}

// Decode splits text on any whitespace and decodes every token. Nothing is
// returned unless all tokens are valid.
func Decode(text string, cache *Cache) ([]byte, error) {
	if cache == nil {
		cache = defaultCache
	}

	tokens := strings.FieldsFunc(text, unicode.IsSpace)
	out := make([]byte, 0, len(tokens))
	for i, tok := range tokens {
		v, ok := cache.Lookup(tok)
		if !ok {
			return nil, &TokenError{Index: i, Token: tok}
		}
		out = append(out, v)
	}
	return out, nil
}

var defaultCache = NewCache()
