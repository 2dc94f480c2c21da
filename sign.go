package lsag

import (
	"fmt"
	"io"
	"math/big"
)

// Sign produces an LSAG signature over message with the private key of
// ring[realIndex], using DefaultSuite and crypto/rand.
func Sign(privateKey *big.Int, realIndex int, message Value, ring Ring) (*Signature, error) {
	return DefaultSuite.Sign(nil, privateKey, realIndex, message, ring)
}

// Sign walks the challenge chain from realIndex+1 around the ring and closes
// it at realIndex. It does not check that ring[realIndex] is G·privateKey, a
// wrong pairing yields a signature that fails verification. Use
// AssertMatches to check it first.
func (s *Suite) Sign(rand io.Reader, privateKey *big.Int, realIndex int, message Value, ring Ring) (*Signature, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if err := ring.Validate(); err != nil {
		return nil, err
	}
	size := len(ring)
	if realIndex < 0 || realIndex >= size {
		return nil, fmt.Errorf("%w: ring size %d and realIndex %d", ErrInvalidInput, size, realIndex)
	}
	if privateKey == nil || privateKey.Sign() < 0 || privateKey.Cmp(curveOrder) >= 0 {
		return nil, fmt.Errorf("%w: private key out of range", ErrInvalidInput)
	}
	if message == nil {
		return nil, fmt.Errorf("%w: nil message", ErrInvalidInput)
	}

	H, err := s.HashToPoint(ring.Value())
	if err != nil {
		return nil, err
	}
	// key image, Y = H·x
	Y := H.Mul(privateKey)
	G := BasePoint()

	c := make([]*big.Int, size)
	r := make([]*big.Int, size)

	alpha, err := randScalar(rand, 1)
	if err != nil {
		return nil, err
	}
	c[(realIndex+1)%size], err = s.challenge(ring, Y, message, G.Mul(alpha), H.Mul(alpha))
	if err != nil {
		return nil, err
	}

	for n := 1; n < size; n++ {
		i := (realIndex + n) % size
		r[i], err = randScalar(rand, 0)
		if err != nil {
			return nil, err
		}
		z1 := G.Mul(r[i]).Add(ring[i].Mul(c[i]))
		z2 := H.Mul(r[i]).Add(Y.Mul(c[i]))
		c[(i+1)%size], err = s.challenge(ring, Y, message, z1, z2)
		if err != nil {
			return nil, err
		}
	}

	// r[realIndex] = alpha - x·c[realIndex] mod l
	closing := new(big.Int).Mul(privateKey, c[realIndex])
	closing.Sub(alpha, closing)
	r[realIndex] = closing.Mod(closing, curveOrder)

	return &Signature{
		C0:       c[0],
		S:        r,
		KeyImage: Y,
	}, nil
}

// AssertMatches reports whether ring[realIndex] is the public key of
// privateKey. Sign never performs this check itself.
func AssertMatches(privateKey *big.Int, realIndex int, ring Ring) error {
	if realIndex < 0 || realIndex >= len(ring) {
		return fmt.Errorf("%w: ring size %d and realIndex %d", ErrInvalidInput, len(ring), realIndex)
	}
	if privateKey == nil {
		return fmt.Errorf("%w: nil private key", ErrInvalidInput)
	}
	if !PublicKey(privateKey).Equal(ring[realIndex]) {
		return fmt.Errorf("%w: private key does not match ring member %d", ErrInvalidInput, realIndex)
	}
	return nil
}
