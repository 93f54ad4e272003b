package properties

import (
	"strconv"
	"strings"

	"github.com/eugenenazirov/propcfg/internal/textutil"
)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// GetInt parses key as a 32-bit signed decimal.
func (s *Store) GetInt(key string) (int32, bool) {
	return lookupSigned[int32](s, key)
}

// GetUInt parses key as a 32-bit unsigned decimal.
func (s *Store) GetUInt(key string) (uint32, bool) {
	return lookupUnsigned[uint32](s, key)
}

// GetLong parses key as a 64-bit signed decimal.
func (s *Store) GetLong(key string) (int64, bool) {
	return lookupSigned[int64](s, key)
}

// GetULong parses key as a 64-bit unsigned decimal.
func (s *Store) GetULong(key string) (uint64, bool) {
	return lookupUnsigned[uint64](s, key)
}

// GetBool parses key with ParseBool.
func (s *Store) GetBool(key string) (bool, bool) {
	v, ok := s.data[key]
	if !ok {
		return false, false
	}
	return ParseBool(v)
}

// GetString returns the raw value of key.
func (s *Store) GetString(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

func lookupSigned[T signed](s *Store, key string) (T, bool) {
	v, ok := s.data[key]
	if !ok {
		return 0, false
	}
	return parseSigned[T](v)
}

func lookupUnsigned[T unsigned](s *Store, key string) (T, bool) {
	v, ok := s.data[key]
	if !ok {
		return 0, false
	}
	return parseUnsigned[T](v)
}

// parseSigned accepts a whole decimal number surrounded by optional
// whitespace and rejects values that overflow T.
func parseSigned[T signed](text string) (T, bool) {
	n, err := strconv.ParseInt(textutil.Trim(text), 10, 64)
	if err != nil {
		return 0, false
	}
	v := T(n)
	if int64(v) != n {
		return 0, false
	}
	return v, true
}

func parseUnsigned[T unsigned](text string) (T, bool) {
	n, err := strconv.ParseUint(strings.TrimPrefix(textutil.Trim(text), "+"), 10, 64)
	if err != nil {
		return 0, false
	}
	v := T(n)
	if uint64(v) != n {
		return 0, false
	}
	return v, true
}

// ParseBool accepts a decimal integer, true when non-zero, or the words
// "true" and "false" in any letter case.
func ParseBool(text string) (bool, bool) {
	token := textutil.Trim(text)
	if n, ok := parseSigned[int64](token); ok {
		return n != 0, true
	}
	switch {
	case strings.EqualFold(token, "true"):
		return true, true
	case strings.EqualFold(token, "false"):
		return false, true
	default:
		return false, false
	}
}
