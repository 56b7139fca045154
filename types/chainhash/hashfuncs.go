// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import "github.com/blakecoin-community/blakecoind/crypto/blake256"

// HashB calculates the Blake-256 digest of b and returns the resulting bytes.
//
// Unlike SHA-256d chains, blakecoin hashes headers exactly once.
func HashB(b []byte) []byte {
	hash := blake256.Sum256(b)
	return hash[:]
}

// HashH calculates the Blake-256 digest of b and returns the resulting bytes
// as a Hash.
func HashH(b []byte) Hash {
	return Hash(blake256.Sum256(b))
}
