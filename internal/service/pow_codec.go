package service

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/Aplet123/kctf-pow/internal/entity"
)

const version = "s"

// Strict decoding: non-zero trailing padding bits are a decode error,
// not noise to be masked off.
var b64 = base64.StdEncoding.Strict()

// ErrMalformed reports text that does not match the wire grammar
// "s.<base64 4-byte big-endian difficulty>.<base64 payload>". It is distinct
// from a well-formed but incorrect solution, which Check reports as false.
var ErrMalformed = errors.New("malformed challenge string")

// EncodeChallenge renders a challenge (or, with the result bytes in the seed
// slot, a solution) in the wire format. Standard base64 alphabet with padding.
func EncodeChallenge(ch entity.Challenge) string {
	var diff [4]byte
	binary.BigEndian.PutUint32(diff[:], ch.Difficulty)
	return version + "." +
		b64.EncodeToString(diff[:]) + "." +
		b64.EncodeToString(ch.Seed)
}

// DecodeChallenge parses the wire format back into challenge parameters.
// Every deviation from the grammar wraps ErrMalformed; no partial result is
// ever returned.
func DecodeChallenge(s string) (entity.Challenge, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return entity.Challenge{}, fmt.Errorf("%w: expected 3 dot-separated fields, got %d", ErrMalformed, len(parts))
	}
	if parts[0] != version {
		return entity.Challenge{}, fmt.Errorf("%w: unknown version %q", ErrMalformed, parts[0])
	}
	diff, err := b64.DecodeString(parts[1])
	if err != nil {
		return entity.Challenge{}, fmt.Errorf("%w: difficulty field: %v", ErrMalformed, err)
	}
	if len(diff) != 4 {
		return entity.Challenge{}, fmt.Errorf("%w: difficulty field is %d bytes, want 4", ErrMalformed, len(diff))
	}
	seed, err := b64.DecodeString(parts[2])
	if err != nil {
		return entity.Challenge{}, fmt.Errorf("%w: seed field: %v", ErrMalformed, err)
	}
	return entity.Challenge{
		Difficulty: binary.BigEndian.Uint32(diff),
		Seed:       seed,
	}, nil
}
