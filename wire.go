package lsag

import (
	"fmt"
	"math/big"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the protobuf wire form:
//
//	message Signature {
//	  bytes c_zero = 1;
//	  repeated bytes responses = 2;
//	  bytes key_image = 3;
//	}
const (
	wireCZero     protowire.Number = 1
	wireResponses protowire.Number = 2
	wireKeyImage  protowire.Number = 3
)

func (sig *Signature) MarshalBinary() ([]byte, error) {
	if sig == nil || sig.C0 == nil || sig.KeyImage == nil {
		return nil, fmt.Errorf("%w: incomplete signature", ErrInvalidInput)
	}
	var b []byte
	b = protowire.AppendTag(b, wireCZero, protowire.BytesType)
	b = protowire.AppendBytes(b, sig.C0.Bytes())
	for i, r := range sig.S {
		if r == nil {
			return nil, fmt.Errorf("%w: nil response %d", ErrInvalidInput, i)
		}
		b = protowire.AppendTag(b, wireResponses, protowire.BytesType)
		b = protowire.AppendBytes(b, r.Bytes())
	}
	image := sig.KeyImage.Bytes()
	b = protowire.AppendTag(b, wireKeyImage, protowire.BytesType)
	b = protowire.AppendBytes(b, image[:])
	return b, nil
}

func (sig *Signature) UnmarshalBinary(data []byte) error {
	var out Signature
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidInput, protowire.ParseError(n))
		}
		data = data[n:]
		if typ != protowire.BytesType {
			switch num {
			case wireCZero, wireResponses, wireKeyImage:
				return fmt.Errorf("%w: field %d has wire type %d", ErrInvalidInput, num, typ)
			}
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("%w: %v", ErrInvalidInput, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}
		v, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidInput, protowire.ParseError(n))
		}
		data = data[n:]
		switch num {
		case wireCZero:
			out.C0 = new(big.Int).SetBytes(v)
		case wireResponses:
			out.S = append(out.S, new(big.Int).SetBytes(v))
		case wireKeyImage:
			p, err := PointFromBytes(v)
			if err != nil {
				return err
			}
			out.KeyImage = p
		}
	}
	if out.C0 == nil || out.KeyImage == nil {
		return fmt.Errorf("%w: signature is missing c_zero or key_image", ErrInvalidInput)
	}
	*sig = out
	return nil
}
