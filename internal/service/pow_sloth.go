package service

import (
	"bytes"
	crand "crypto/rand"
	"fmt"
	"math/big"

	"github.com/Aplet123/kctf-pow/internal/entity"
)

const (
	// Squarings per difficulty round. Over this modulus x^(2^1277) equals
	// x^((M+1)/4), so a round is a pure squaring chain with no general
	// exponentiation involved.
	roundSquarings = 1277

	seedBytes = 16
)

// Sloth implements the "s"-format sequential proof-of-work scheme: each
// difficulty round squares the work value 1277 times modulo 2^1279-1 and
// then flips its lowest bit. The flip breaks the algebraic structure that
// would otherwise let a solver collapse all rounds into one fast modular
// exponentiation, so the cost stays linear in difficulty. Verification
// recomputes the same chain; there is no shortcut for the checker either.
//
// All methods are pure apart from NewChallenge's entropy draw; a Sloth value
// is safe for concurrent use.
type Sloth struct{}

func NewSloth() *Sloth { return &Sloth{} }

// NewChallenge draws a fresh 16-byte seed from crypto/rand and pairs it with
// the requested difficulty. It fails only when the entropy source does.
func (p *Sloth) NewChallenge(difficulty uint32) (entity.Challenge, error) {
	seed := make([]byte, seedBytes)
	if _, err := crand.Read(seed); err != nil {
		return entity.Challenge{}, fmt.Errorf("entropy source: %w", err)
	}
	return entity.Challenge{Difficulty: difficulty, Seed: seed}, nil
}

// Solve runs the sequential chain for the challenge and returns the encoded
// solution. Deterministic: the same challenge always yields the same string.
func (p *Sloth) Solve(ch entity.Challenge) string {
	return EncodeChallenge(entity.Challenge{
		Difficulty: ch.Difficulty,
		Seed:       work(ch),
	})
}

// Check decodes a claimed solution and compares its payload byte-for-byte
// against a full recomputation of the chain. A solution that fails the wire
// grammar is a decode error, not an incorrect solution.
func (p *Sloth) Check(ch entity.Challenge, solution string) (bool, error) {
	claimed, err := DecodeChallenge(solution)
	if err != nil {
		return false, err
	}
	return bytes.Equal(claimed.Seed, work(ch)), nil
}

// work evaluates the chain and returns the final value in minimal big-endian
// form (zero serializes to no bytes), matching what Solve encodes and what
// Check expects a solution payload to be.
func work(ch entity.Challenge) []byte {
	x := new(big.Int).SetBytes(ch.Seed)
	x.Mod(x, modulus)
	scratch := new(big.Int)
	for i := uint32(0); i < ch.Difficulty; i++ {
		for j := 0; j < roundSquarings; j++ {
			squareMod(x, scratch)
		}
		x.Xor(x, one)
	}
	return x.Bytes()
}
