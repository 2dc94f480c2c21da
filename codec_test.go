package lsag

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"testing"

	solsha3 "github.com/miguelmota/go-solidity-sha3"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"
)

func TestPackedCodec(t *testing.T) {
	assert := assert.New(t)

	x := fixedKeys()
	ring := NewRing(x[:3]...)
	Y := PublicKey(big.NewInt(11))
	z1 := PublicKey(big.NewInt(12))
	z2 := PublicKey(big.NewInt(13))

	packed, err := Packed.EncodeChallenge(ring, Y, Uint64(1), z1, z2)
	assert.Nil(err)
	assert.Len(packed, 64*3+64+32+64*2)

	// integer messages occupy one word in both layouts
	fixed, err := FixedWidth.EncodeChallenge(ring, Y, Uint64(1), z1, z2)
	assert.Nil(err)
	assert.True(bytes.Equal(fixed, packed))

	packed, err = Packed.EncodeChallenge(ring, Y, Text("yes"), z1, z2)
	assert.Nil(err)
	assert.Len(packed, 64*3+64+32+64*2)
	assert.Equal([]byte("yes"), packed[256:259])
	assert.Equal(make([]byte, 29), packed[259:288])

	fixed, err = FixedWidth.EncodeChallenge(ring, Y, Text("yes"), z1, z2)
	assert.Nil(err)
	assert.Len(fixed, 64*3+64+3+64*2)
}

func TestPackedCodecErrors(t *testing.T) {
	assert := assert.New(t)

	ring := NewRing(big.NewInt(1), big.NewInt(2))
	Y := PublicKey(big.NewInt(3))

	_, err := Packed.EncodeChallenge(ring, Y, Text(strings.Repeat("a", 33)), Y, Y)
	assert.True(errors.Is(err, ErrEncodingOverflow))
	_, err = Packed.EncodeChallenge(ring, Y, Bytes(make([]byte, 33)), Y, Y)
	assert.True(errors.Is(err, ErrEncodingOverflow))
	_, err = Packed.EncodeChallenge(ring, Y, List(Uint64(1)), Y, Y)
	assert.True(errors.Is(err, ErrInvalidInput))
	_, err = Packed.EncodeChallenge(ring, Y, PointValue(Y), Y, Y)
	assert.True(errors.Is(err, ErrInvalidInput))
	_, err = Packed.EncodeChallenge(ring, nil, Uint64(1), Y, Y)
	assert.True(errors.Is(err, ErrInvalidInput))
	_, err = Packed.EncodeChallenge(Ring{nil, Y}, Y, Uint64(1), Y, Y)
	assert.True(errors.Is(err, ErrInvalidInput))

	_, err = Contract.Sign(nil, big.NewInt(1), 0, Text(strings.Repeat("a", 40)), ring)
	assert.True(errors.Is(err, ErrEncodingOverflow))
}

func TestContractChallengeDigest(t *testing.T) {
	assert := assert.New(t)

	ring := NewRing(big.NewInt(1), big.NewInt(2))
	Y := PublicKey(big.NewInt(3))
	z1 := PublicKey(big.NewInt(4))
	z2 := PublicKey(big.NewInt(5))

	// 2G has x >= 2^255, the int256 slot keeps all 32 bytes
	high := new(big.Int).Lsh(big.NewInt(1), 255)
	assert.True(ring[1].X().Cmp(high) >= 0)

	packed, err := Packed.EncodeChallenge(ring, Y, Uint64(1), z1, z2)
	assert.Nil(err)
	assert.Len(packed, 352)
	assert.Equal("c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5", hex.EncodeToString(packed[64:96]))

	c, err := Contract.challenge(ring, Y, Uint64(1), z1, z2)
	assert.Nil(err)
	assert.Equal("111b800370db41a63e93097636b9062e1b8185f2e67c58b777ddb635f8af14a9", hex.EncodeToString(c.FillBytes(make([]byte, 32))))
	assert.Equal(solsha3.SoliditySHA3(packed), c.FillBytes(make([]byte, 32)))

	keccak := sha3.NewLegacyKeccak256()
	fixed, err := FixedWidth.EncodeChallenge(ring, Y, Uint64(1), z1, z2)
	assert.Nil(err)
	keccak.Write(fixed)
	assert.Equal(keccak.Sum(nil), c.FillBytes(make([]byte, 32)))
}
