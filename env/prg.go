//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"golang.org/x/crypto/chacha20"
)

// PRG is a deterministic pseudo-random generator implementing
// io.Reader over a ChaCha20 keystream. It substitutes for the system
// entropy source in Config.Rand when tests and benchmarks need
// reproducible labels and keys. It is not a replacement for a
// cryptographically secure source outside of testing.
type PRG struct {
	cipher *chacha20.Cipher
}

// NewPRG creates a PRG seeded with the seed.
func NewPRG(seed [32]byte) *PRG {
	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(err)
	}
	return &PRG{
		cipher: cipher,
	}
}

// Read fills buf with keystream bytes. It never fails.
func (prg *PRG) Read(buf []byte) (int, error) {
	for i := range buf {
		buf[i] = 0
	}
	prg.cipher.XORKeyStream(buf, buf)
	return len(buf), nil
}
