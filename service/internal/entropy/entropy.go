// Package entropy provides the randomness games are dealt with: a seed drawn
// from the operating system and a ChaCha20 keystream expanded from it. The
// same seed always deals the same deck, so persisting the seed is enough to
// rebuild a game.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	engine "github.com/nordklondike/klondike/engine"
	"golang.org/x/crypto/chacha20"
)

// SeedSize is the ChaCha20 key size.
const SeedSize = chacha20.KeySize

// ErrBadSeed is returned when a seed cannot be parsed.
var ErrBadSeed = errors.New("malformed seed")

// Seed is the secret a game's deck is derived from.
type Seed [SeedSize]byte

// NewSeed reads a fresh seed from the operating system's CSPRNG.
func NewSeed() (Seed, error) { return NewSeedFrom(rand.Reader) }

// NewSeedFrom reads a seed from r. A short read is an error; there is no
// degraded mode for a game that needs a fair shuffle.
func NewSeedFrom(r io.Reader) (Seed, error) {
	var s Seed
	if _, err := io.ReadFull(r, s[:]); err != nil {
		return Seed{}, fmt.Errorf("%w: reading seed: %w", engine.ErrRandomness, err)
	}
	return s, nil
}

// ParseSeed decodes the hex form produced by Seed.String.
func ParseSeed(s string) (Seed, error) {
	var seed Seed
	b, err := hex.DecodeString(s)
	if err != nil {
		return Seed{}, fmt.Errorf("%w: %w", ErrBadSeed, err)
	}
	if len(b) != SeedSize {
		return Seed{}, fmt.Errorf("%w: got %d bytes, want %d", ErrBadSeed, len(b), SeedSize)
	}
	copy(seed[:], b)
	return seed, nil
}

func (s Seed) String() string { return hex.EncodeToString(s[:]) }

// ChaCha is a deterministic engine.RNG reading the ChaCha20 keystream of a
// seed with an all-zero nonce.
type ChaCha struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

// NewChaCha returns the keystream generator for seed.
func NewChaCha(seed Seed) (*ChaCha, error) {
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		return nil, fmt.Errorf("chacha20: %w", err)
	}
	return &ChaCha{cipher: c}, nil
}

// Uint64 returns the next eight keystream bytes.
func (r *ChaCha) Uint64() uint64 {
	clear(r.buf[:])
	r.cipher.XORKeyStream(r.buf[:], r.buf[:])
	return binary.LittleEndian.Uint64(r.buf[:])
}

func (r *ChaCha) IntN(n int) (int, error) {
	return engine.UniformIntN(func() (uint64, error) { return r.Uint64(), nil }, n)
}

// Deck deals the shuffled deck for seed.
func Deck(seed Seed) (engine.ShuffledDeck, error) {
	rng, err := NewChaCha(seed)
	if err != nil {
		return engine.ShuffledDeck{}, err
	}
	return engine.NewShuffledDeck(rng)
}
