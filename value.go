package lsag

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// Value is one element of a hash input. The set of implementations is
// closed: integers, points, byte strings, text and nested lists.
type Value interface {
	appendFixed(dst []byte) ([]byte, error)
	String() string
}

type intValue struct{ v *big.Int }

type pointValue struct{ p *Point }

type bytesValue []byte

type textValue string

type listValue []Value

func Int(v *big.Int) Value { return intValue{v: v} }

func Uint64(v uint64) Value { return intValue{v: new(big.Int).SetUint64(v)} }

func PointValue(p *Point) Value { return pointValue{p: p} }

func Bytes(b []byte) Value { return bytesValue(b) }

func Text(s string) Value { return textValue(s) }

func List(items ...Value) Value { return listValue(items) }

// Encode concatenates the fixed width encodings of items. Integers take 32
// bytes big-endian, points take 64 bytes (x then y), text and bytes are
// copied raw and lists are flattened in place. There are no separators or
// length prefixes.
func Encode(items ...Value) ([]byte, error) {
	return listValue(items).appendFixed(nil)
}

func (v intValue) appendFixed(dst []byte) ([]byte, error) {
	word, err := word32(v.v)
	if err != nil {
		return nil, err
	}
	return append(dst, word[:]...), nil
}

func (v intValue) String() string {
	if v.v == nil {
		return "<nil>"
	}
	return v.v.String()
}

func (v pointValue) appendFixed(dst []byte) ([]byte, error) {
	if v.p == nil {
		return nil, fmt.Errorf("%w: nil point", ErrInvalidInput)
	}
	b := v.p.Bytes()
	return append(dst, b[:]...), nil
}

func (v pointValue) String() string {
	if v.p == nil {
		return "<nil>"
	}
	return v.p.String()
}

func (v bytesValue) appendFixed(dst []byte) ([]byte, error) {
	return append(dst, v...), nil
}

func (v bytesValue) String() string {
	return hex.EncodeToString(v)
}

func (v textValue) appendFixed(dst []byte) ([]byte, error) {
	return append(dst, v...), nil
}

func (v textValue) String() string {
	return string(v)
}

func (v listValue) appendFixed(dst []byte) ([]byte, error) {
	var err error
	for i, item := range v {
		if item == nil {
			return nil, fmt.Errorf("%w: nil value at position %d", ErrInvalidInput, i)
		}
		dst, err = item.appendFixed(dst)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (v listValue) String() string {
	parts := make([]string, len(v))
	for i, item := range v {
		if item == nil {
			parts[i] = "<nil>"
			continue
		}
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// word32 returns v as an unsigned 256 bit big-endian word.
func word32(v *big.Int) ([32]byte, error) {
	var word [32]byte
	if v == nil {
		return word, fmt.Errorf("%w: nil integer", ErrInvalidInput)
	}
	if v.Sign() < 0 || v.BitLen() > 256 {
		return word, fmt.Errorf("%w: integer %s does not fit 32 bytes", ErrEncodingOverflow, v)
	}
	v.FillBytes(word[:])
	return word, nil
}
