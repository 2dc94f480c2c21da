package lsag

import (
	"fmt"
	"sync"

	"github.com/btcsuite/btcutil/base58"
)

// KeyImageTag is the base58 form of a key image, used as the identity of a
// signer within one ring.
func KeyImageTag(keyImage *Point) string {
	b := keyImage.Bytes()
	return base58.Encode(b[:])
}

// LinkSet accepts at most one signature per private key over a fixed ring,
// e.g. one ballot per voter. It keeps the tags in memory only.
type LinkSet struct {
	suite *Suite
	ring  Ring

	mutex sync.Mutex
	seen  map[string]string
}

func NewLinkSet(suite *Suite, ring Ring) (*LinkSet, error) {
	if suite == nil {
		suite = DefaultSuite
	}
	if err := suite.validate(); err != nil {
		return nil, err
	}
	if err := ring.Validate(); err != nil {
		return nil, err
	}
	return &LinkSet{
		suite: suite,
		ring:  append(Ring(nil), ring...),
		seen:  make(map[string]string),
	}, nil
}

// Accept verifies sig over message and records its key image. It returns
// ErrBadSignature when verification fails and ErrLinked when the same key
// already signed over this ring.
func (ls *LinkSet) Accept(message Value, sig *Signature) error {
	valid, err := ls.suite.Verify(message, ls.ring, sig)
	if err != nil {
		return err
	}
	if !valid {
		return ErrBadSignature
	}

	tag := KeyImageTag(sig.KeyImage)
	ls.mutex.Lock()
	defer ls.mutex.Unlock()
	if prev, found := ls.seen[tag]; found {
		return fmt.Errorf("%w: key image %s already signed %s", ErrLinked, tag, prev)
	}
	ls.seen[tag] = message.String()
	return nil
}

// Seen reports whether a signature with this key image was accepted.
func (ls *LinkSet) Seen(keyImage *Point) bool {
	ls.mutex.Lock()
	defer ls.mutex.Unlock()
	_, found := ls.seen[KeyImageTag(keyImage)]
	return found
}

func (ls *LinkSet) Len() int {
	ls.mutex.Lock()
	defer ls.mutex.Unlock()
	return len(ls.seen)
}
