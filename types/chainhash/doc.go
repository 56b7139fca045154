// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the Hash value type and the chain's hashing
// helpers.
//
// Block and transaction identifiers are 32-byte Blake-256 digests. The Hash
// type stores them in the internal (serialization) byte order; String and
// NewHashFromStr use the byte-reversed display convention shared with other
// Bitcoin-derived chains.
package chainhash
