package lsag

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// WriteText renders a signature, its message and its ring for humans. The
// ring is written as decimal x,y pairs separated by semicolons.
func WriteText(w io.Writer, message Value, ring Ring, sig *Signature) error {
	if err := checkExport(message, ring, sig); err != nil {
		return err
	}
	view := sig.Hex()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "c0 = %s\n", view.CZero)
	fmt.Fprintf(bw, "s = %s\n", strings.Join(view.Responses, ","))
	fmt.Fprintf(bw, "key_image = %s,%s\n", view.KeyImage[0], view.KeyImage[1])
	fmt.Fprintf(bw, "message = %s\n", message)
	fmt.Fprintf(bw, "ring = %s\n", ringPairs(ring))
	return bw.Flush()
}

// WriteJavaScript renders the signature as BigNumber declarations that a
// contract test harness can load next to its verifier.
func WriteJavaScript(w io.Writer, message Value, ring Ring, sig *Signature) error {
	if err := checkExport(message, ring, sig); err != nil {
		return err
	}
	word, err := bytes32(message)
	if err != nil {
		return err
	}
	responses := make([]string, len(sig.S))
	for i, r := range sig.S {
		responses[i] = bigNumber(r.String())
	}
	keys := make([]string, len(ring))
	for i, p := range ring {
		keys[i] = bigNumber(p.X().String()) + ", " + bigNumber(p.Y().String())
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "var c_0 = %s;\n", bigNumber(sig.C0.String()))
	fmt.Fprintf(bw, "var s = [%s];\n", strings.Join(responses, ", "))
	fmt.Fprintf(bw, "var Y = [%s, %s];\n", bigNumber(sig.KeyImage.X().String()), bigNumber(sig.KeyImage.Y().String()))
	fmt.Fprintf(bw, "var message = %s;\n", bigNumber("0x"+hex.EncodeToString(word[:])))
	fmt.Fprintf(bw, "var pub_keys = [%s];\n", strings.Join(keys, ", "))
	return bw.Flush()
}

func checkExport(message Value, ring Ring, sig *Signature) error {
	if message == nil {
		return fmt.Errorf("%w: nil message", ErrInvalidInput)
	}
	if err := ring.Validate(); err != nil {
		return err
	}
	return sig.validate(len(ring))
}

func ringPairs(ring Ring) string {
	pairs := make([]string, len(ring))
	for i, p := range ring {
		pairs[i] = p.String()
	}
	return strings.Join(pairs, ";")
}

func bigNumber(v string) string {
	return fmt.Sprintf("new BigNumber(%q)", v)
}
