package lsag

import (
	"crypto/rand"
	"io"
	"math/big"
)

// randScalar samples uniformly from [min, order).
func randScalar(r io.Reader, min int64) (*big.Int, error) {
	if r == nil {
		r = rand.Reader
	}
	lo := big.NewInt(min)
	k, err := rand.Int(r, new(big.Int).Sub(curveOrder, lo))
	if err != nil {
		return nil, err
	}
	return k.Add(k, lo), nil
}
