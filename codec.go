package lsag

import (
	"fmt"
	"math/big"

	solsha3 "github.com/miguelmota/go-solidity-sha3"
)

// Codec turns one link of the challenge chain into hash input. The Suite
// carries it for both signer and verifier.
type Codec interface {
	EncodeChallenge(ring Ring, keyImage *Point, message Value, z1, z2 *Point) ([]byte, error)
}

var (
	// FixedWidth hashes [ring, Y, message, z1, z2] with Encode.
	FixedWidth Codec = fixedWidthCodec{}

	// Packed reproduces the solidity abi.encodePacked layout of
	// (int256[2][] ring, uint256[2] Y, bytes32 message, uint256[2] z1, uint256[2] z2)
	// so that a contract can recompute the challenges.
	Packed Codec = packedCodec{}
)

type fixedWidthCodec struct{}

func (fixedWidthCodec) EncodeChallenge(ring Ring, keyImage *Point, message Value, z1, z2 *Point) ([]byte, error) {
	return Encode(ring.Value(), PointValue(keyImage), message, PointValue(z1), PointValue(z2))
}

type packedCodec struct{}

func (packedCodec) EncodeChallenge(ring Ring, keyImage *Point, message Value, z1, z2 *Point) ([]byte, error) {
	words := make([][]byte, 0, 2*len(ring)+7)
	for i, p := range ring {
		if p == nil {
			return nil, fmt.Errorf("%w: nil ring member %d", ErrInvalidInput, i)
		}
		words = append(words, solsha3.Int256(p.X()), solsha3.Int256(p.Y()))
	}
	if keyImage == nil {
		return nil, fmt.Errorf("%w: nil key image", ErrInvalidInput)
	}
	words = append(words, solsha3.Uint256(keyImage.X()), solsha3.Uint256(keyImage.Y()))

	m, err := bytes32(message)
	if err != nil {
		return nil, err
	}
	words = append(words, m)

	for _, z := range []*Point{z1, z2} {
		if z == nil {
			return nil, fmt.Errorf("%w: nil challenge point", ErrInvalidInput)
		}
		words = append(words, solsha3.Uint256(z.X()), solsha3.Uint256(z.Y()))
	}
	return solsha3.ConcatByteSlices(words...), nil
}

// bytes32 packs a message into a solidity bytes32 slot. Integers are
// big-endian, byte strings are right padded with zeros.
func bytes32(message Value) ([]byte, error) {
	switch m := message.(type) {
	case intValue:
		if _, err := word32(m.v); err != nil {
			return nil, err
		}
		return solsha3.Uint256(new(big.Int).Set(m.v)), nil
	case bytesValue:
		if len(m) > 32 {
			return nil, fmt.Errorf("%w: message has %d bytes, bytes32 holds 32", ErrEncodingOverflow, len(m))
		}
		return solsha3.Bytes32([]byte(m)), nil
	case textValue:
		if len(m) > 32 {
			return nil, fmt.Errorf("%w: message has %d bytes, bytes32 holds 32", ErrEncodingOverflow, len(m))
		}
		return solsha3.Bytes32([]byte(m)), nil
	case nil:
		return nil, fmt.Errorf("%w: nil message", ErrInvalidInput)
	default:
		return nil, fmt.Errorf("%w: message %T cannot be packed as bytes32", ErrInvalidInput, message)
	}
}
