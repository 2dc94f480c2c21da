package lsag

import (
	"fmt"
	"math/big"
	"strings"
)

// Signature is (c0, s, Y). C0 is the raw challenge digest, it is never
// reduced modulo the group order.
type Signature struct {
	C0       *big.Int
	S        []*big.Int
	KeyImage *Point
}

// Linked reports whether a and b were made by the same private key, which
// is only meaningful when both were made over the same ring.
func Linked(a, b *Signature) bool {
	if a == nil || b == nil || a.KeyImage == nil || b.KeyImage == nil {
		return false
	}
	return a.KeyImage.Equal(b.KeyImage)
}

// RingSignature is the hex view of a Signature, c0 and every response as
// 0x prefixed hex and the key image as an (x, y) hex pair.
type RingSignature struct {
	CZero     string    `json:"c_zero"`
	Responses []string  `json:"responses"`
	KeyImage  [2]string `json:"key_image"`
}

// Hex returns nil when sig is nil or has a nil c0, key image or response.
func (sig *Signature) Hex() *RingSignature {
	if sig == nil || sig.validate(len(sig.S)) != nil {
		return nil
	}
	responses := make([]string, len(sig.S))
	for i, r := range sig.S {
		responses[i] = toHex(r)
	}
	return &RingSignature{
		CZero:     toHex(sig.C0),
		Responses: responses,
		KeyImage:  [2]string{toHex(sig.KeyImage.X()), toHex(sig.KeyImage.Y())},
	}
}

func ParseRingSignature(rs *RingSignature) (*Signature, error) {
	if rs == nil {
		return nil, fmt.Errorf("%w: nil ring signature", ErrInvalidInput)
	}
	c0, err := fromHex(rs.CZero)
	if err != nil {
		return nil, err
	}
	responses := make([]*big.Int, len(rs.Responses))
	for i, h := range rs.Responses {
		responses[i], err = fromHex(h)
		if err != nil {
			return nil, err
		}
	}
	x, err := fromHex(rs.KeyImage[0])
	if err != nil {
		return nil, err
	}
	y, err := fromHex(rs.KeyImage[1])
	if err != nil {
		return nil, err
	}
	var image *Point
	if x.Sign() == 0 && y.Sign() == 0 {
		image = &Point{}
	} else if image, err = NewPoint(x, y); err != nil {
		return nil, err
	}
	return &Signature{C0: c0, S: responses, KeyImage: image}, nil
}

func toHex(v *big.Int) string {
	return "0x" + v.Text(16)
}

func fromHex(h string) (*big.Int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid hex integer %q", ErrInvalidInput, h)
	}
	return v, nil
}
