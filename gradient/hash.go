// SPDX-License-Identifier: MIT
// Package: lvnoise/gradient
//
// hash.go — corner digest.
//
// Contract:
//   • Each coordinate contributes its raw IEEE-754 bit pattern as 4
//     little-endian bytes, in corner order. Nothing else enters the digest.
//   • Order-sensitive: [1,2] and [2,1] are different inputs.
//   • Bit-exact: +0 and −0 (and distinct NaN payloads) are different inputs.
//   • Total and pure; never fails.

package gradient

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// coordBytes is the width of one coordinate in the digest stream.
const coordBytes = 4

// Digest reduces a corner to a stable 64-bit value (xxHash64, seed 0).
// Identical corners always produce identical digests on every platform.
// Complexity: O(n) time, O(1) extra space.
func Digest(corner []float32) uint64 {
	d := xxhash.New()
	var buf [coordBytes]byte
	for _, x := range corner {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(x))
		// xxhash.Digest.Write always returns len(b), nil.
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
