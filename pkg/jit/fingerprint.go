package jit

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex digest of an instruction buffer.
// Identical programs compile to identical buffers, so the fingerprint
// identifies generated code in diagnostic output.
func Fingerprint(code []byte) string {
	sum := blake2b.Sum256(code)
	return hex.EncodeToString(sum[:8])
}
