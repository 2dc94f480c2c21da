package lsag

import (
	"fmt"
	"math/big"
)

// Ring is the ordered list of public keys a signer hides among. The order is
// part of every hash input, signer and verifier must agree on it exactly.
type Ring []*Point

// NewRing derives the ring G·x[i] for the given private scalars.
func NewRing(privs ...*big.Int) Ring {
	ring := make(Ring, len(privs))
	for i, x := range privs {
		ring[i] = PublicKey(x)
	}
	return ring
}

func (r Ring) Validate() error {
	if len(r) < 2 {
		return fmt.Errorf("%w: ring size %d, at least 2 members required", ErrInvalidInput, len(r))
	}
	for i, p := range r {
		if p == nil {
			return fmt.Errorf("%w: nil ring member %d", ErrInvalidInput, i)
		}
	}
	return nil
}

// Value returns the ring as an ordered list of point values.
func (r Ring) Value() Value {
	items := make([]Value, len(r))
	for i, p := range r {
		items[i] = PointValue(p)
	}
	return List(items...)
}

// Index returns the position of p in the ring, or -1.
func (r Ring) Index(p *Point) int {
	for i, q := range r {
		if q.Equal(p) {
			return i
		}
	}
	return -1
}
