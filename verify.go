package lsag

import "fmt"

// Verify checks sig against message and ring with DefaultSuite.
func Verify(message Value, ring Ring, sig *Signature) (bool, error) {
	return DefaultSuite.Verify(message, ring, sig)
}

// Verify replays the challenge chain from C0 around the whole ring and
// accepts when it closes back on C0. Malformed input is an error, a
// well formed signature that does not close is false with a nil error.
func (s *Suite) Verify(message Value, ring Ring, sig *Signature) (bool, error) {
	if err := s.validate(); err != nil {
		return false, err
	}
	if err := ring.Validate(); err != nil {
		return false, err
	}
	if err := sig.validate(len(ring)); err != nil {
		return false, err
	}
	if message == nil {
		return false, fmt.Errorf("%w: nil message", ErrInvalidInput)
	}

	H, err := s.HashToPoint(ring.Value())
	if err != nil {
		return false, err
	}
	G := BasePoint()
	Y := sig.KeyImage

	c := sig.C0
	for i := range ring {
		z1 := G.Mul(sig.S[i]).Add(ring[i].Mul(c))
		z2 := H.Mul(sig.S[i]).Add(Y.Mul(c))
		next, err := s.challenge(ring, Y, message, z1, z2)
		if err != nil {
			return false, err
		}
		c = next
	}
	return c.Cmp(sig.C0) == 0, nil
}

func (sig *Signature) validate(size int) error {
	if sig == nil || sig.C0 == nil || sig.KeyImage == nil {
		return fmt.Errorf("%w: incomplete signature", ErrInvalidInput)
	}
	if len(sig.S) != size {
		return fmt.Errorf("%w: %d responses for a ring of %d", ErrInvalidInput, len(sig.S), size)
	}
	for i, r := range sig.S {
		if r == nil {
			return fmt.Errorf("%w: nil response %d", ErrInvalidInput, i)
		}
	}
	return nil
}
