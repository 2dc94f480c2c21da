package lsag

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"math/big"

	"github.com/dchest/blake2b"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"
)

const (
	MERLIN_DOMAIN_TAG = "lsag_merlin_hash"

	// Every candidate has roughly even odds of being a residue, so this
	// cap is never reached by an honest digest.
	maxMapAttempts = 4096
)

// Suite selects the hash function and the challenge codec. Signing,
// verification, H1 and H2 all run through one Suite so the two sides cannot
// disagree on either choice.
type Suite struct {
	Name  string
	Hash  func() hash.Hash
	Codec Codec
}

var (
	SHA256   = &Suite{Name: "sha256", Hash: sha256.New, Codec: FixedWidth}
	SHA3     = &Suite{Name: "sha3-256", Hash: sha3.New256, Codec: FixedWidth}
	Blake2b  = &Suite{Name: "blake2b-256", Hash: blake2b.New256, Codec: FixedWidth}
	Merlin   = &Suite{Name: "merlin", Hash: newMerlinHash, Codec: FixedWidth}
	Contract = &Suite{Name: "keccak256-packed", Hash: sha3.NewLegacyKeccak256, Codec: Packed}

	DefaultSuite = SHA256
)

func (s *Suite) validate() error {
	if s == nil || s.Hash == nil || s.Codec == nil {
		return fmt.Errorf("%w: incomplete suite", ErrInvalidInput)
	}
	if size := s.Hash().Size(); size > 32 {
		return fmt.Errorf("%w: suite %s digest has %d bytes, at most 32 allowed", ErrInvalidInput, s.Name, size)
	}
	return nil
}

func (s *Suite) digest(input []byte) *big.Int {
	h := s.Hash()
	h.Write(input)
	return new(big.Int).SetBytes(h.Sum(nil))
}

// HashToScalar is H1: the digest of Encode(items) read as a big-endian
// unsigned integer. The value is not reduced modulo the group order.
func (s *Suite) HashToScalar(items ...Value) (*big.Int, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	input, err := Encode(items...)
	if err != nil {
		return nil, err
	}
	return s.digest(input), nil
}

// HashToPoint is H2: a try-and-increment map of H1(items) onto the curve.
func (s *Suite) HashToPoint(items ...Value) (*Point, error) {
	x, err := s.HashToScalar(items...)
	if err != nil {
		return nil, err
	}
	return mapToCurve(x, maxMapAttempts)
}

func (s *Suite) challenge(ring Ring, keyImage *Point, message Value, z1, z2 *Point) (*big.Int, error) {
	input, err := s.Codec.EncodeChallenge(ring, keyImage, message, z1, z2)
	if err != nil {
		return nil, err
	}
	return s.digest(input), nil
}

// mapToCurve walks x, x+1, x+2, ... and returns the first candidate for
// which x^3 + 7 is a square mod p, paired with its principal root.
func mapToCurve(x0 *big.Int, attempts int) (*Point, error) {
	x := new(big.Int).Mod(x0, fieldPrime)
	one := big.NewInt(1)
	var buf [32]byte
	for i := 0; i < attempts; i++ {
		x.FillBytes(buf[:])
		var fx, fy secp256k1.FieldVal
		fx.SetBytes(&buf)
		rhs := new(secp256k1.FieldVal).SquareVal(&fx).Mul(&fx).AddInt(7)
		if fy.SquareRootVal(rhs) {
			fy.Normalize()
			return pointFromField(&fx, &fy), nil
		}
		x.Add(x, one)
		if x.Cmp(fieldPrime) >= 0 {
			x.SetInt64(0)
		}
	}
	return nil, fmt.Errorf("%w: no curve point within %d candidates of %s", ErrInternal, attempts, x0)
}
