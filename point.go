package lsag

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	curveOrder = secp256k1.S256().Params().N
	fieldPrime = secp256k1.S256().Params().P
)

// Order returns the order of the secp256k1 group.
func Order() *big.Int { return new(big.Int).Set(curveOrder) }

// FieldPrime returns the prime of the secp256k1 base field.
func FieldPrime() *big.Int { return new(big.Int).Set(fieldPrime) }

// Point is an affine secp256k1 point. Points are never mutated once built,
// every operation returns a fresh value.
type Point struct {
	jp secp256k1.JacobianPoint
}

// NewPoint builds a point from affine coordinates, both coordinates must be
// below the field prime and satisfy the curve equation.
func NewPoint(x, y *big.Int) (*Point, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("%w: nil coordinate", ErrInvalidInput)
	}
	if x.Sign() < 0 || y.Sign() < 0 || x.Cmp(fieldPrime) >= 0 || y.Cmp(fieldPrime) >= 0 {
		return nil, fmt.Errorf("%w: coordinate out of field range", ErrInvalidInput)
	}
	var fx, fy secp256k1.FieldVal
	fx.SetByteSlice(x.Bytes())
	fy.SetByteSlice(y.Bytes())
	if !isOnCurve(&fx, &fy) {
		return nil, fmt.Errorf("%w: point (%s, %s) is not on the curve", ErrInvalidInput, x, y)
	}
	return pointFromField(&fx, &fy), nil
}

// PointFromBytes parses the 64 byte x || y form produced by Bytes. All zero
// bytes decode to the point at infinity.
func PointFromBytes(b []byte) (*Point, error) {
	if len(b) != 64 {
		return nil, fmt.Errorf("%w: point encoding has %d bytes", ErrInvalidInput, len(b))
	}
	x := new(big.Int).SetBytes(b[:32])
	y := new(big.Int).SetBytes(b[32:])
	if x.Sign() == 0 && y.Sign() == 0 {
		return &Point{}, nil
	}
	return NewPoint(x, y)
}

// BasePoint returns the group generator G.
func BasePoint() *Point {
	var one secp256k1.ModNScalar
	one.SetInt(1)
	var p Point
	secp256k1.ScalarBaseMultNonConst(&one, &p.jp)
	p.normalize()
	return &p
}

// PublicKey returns G·priv.
func PublicKey(priv *big.Int) *Point {
	k := scalarFromInt(priv)
	var p Point
	secp256k1.ScalarBaseMultNonConst(k, &p.jp)
	p.normalize()
	return &p
}

func pointFromField(fx, fy *secp256k1.FieldVal) *Point {
	var one secp256k1.FieldVal
	one.SetInt(1)
	p := &Point{jp: secp256k1.MakeJacobianPoint(fx, fy, &one)}
	p.normalize()
	return p
}

func isOnCurve(fx, fy *secp256k1.FieldVal) bool {
	y2 := new(secp256k1.FieldVal).SquareVal(fy).Normalize()
	result := new(secp256k1.FieldVal).SquareVal(fx).Mul(fx).AddInt(7).Normalize()
	return y2.Equals(result)
}

// normalize brings the jacobian representation back to affine with Z = 1,
// or to the all zero infinity representation.
func (p *Point) normalize() {
	if p.jp.Z.Normalize().IsZero() {
		p.jp = secp256k1.JacobianPoint{}
		return
	}
	p.jp.ToAffine()
	p.jp.X.Normalize()
	p.jp.Y.Normalize()
}

func (p *Point) IsInfinity() bool {
	return p.jp.Z.IsZero()
}

func (p *Point) X() *big.Int {
	b := p.Bytes()
	return new(big.Int).SetBytes(b[:32])
}

func (p *Point) Y() *big.Int {
	b := p.Bytes()
	return new(big.Int).SetBytes(b[32:])
}

// Bytes returns x || y, 32 bytes big-endian each.
func (p *Point) Bytes() [64]byte {
	var out [64]byte
	if p.IsInfinity() {
		return out
	}
	var x, y [32]byte
	p.jp.X.PutBytes(&x)
	p.jp.Y.PutBytes(&y)
	copy(out[:32], x[:])
	copy(out[32:], y[:])
	return out
}

func (p *Point) Add(q *Point) *Point {
	var r Point
	secp256k1.AddNonConst(&p.jp, &q.jp, &r.jp)
	r.normalize()
	return &r
}

// Mul returns p·k. k is reduced modulo the group order for the
// multiplication only, callers keep their unreduced value.
func (p *Point) Mul(k *big.Int) *Point {
	var r Point
	secp256k1.ScalarMultNonConst(scalarFromInt(k), &p.jp, &r.jp)
	r.normalize()
	return &r
}

func (p *Point) Equal(q *Point) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.Bytes() == q.Bytes()
}

func (p *Point) String() string {
	return fmt.Sprintf("%s,%s", p.X(), p.Y())
}

func scalarFromInt(k *big.Int) *secp256k1.ModNScalar {
	var buf [32]byte
	new(big.Int).Mod(k, curveOrder).FillBytes(buf[:])
	var s secp256k1.ModNScalar
	s.SetBytes(&buf)
	return &s
}
