// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire implements the serialized structures the blakecoin consensus
// code operates on, most importantly the 80-byte block header.
package wire

import (
	"bytes"
	"encoding/binary"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/blakecoin-community/blakecoind/types/chainhash"
)

// BlockHeaderLen is the number of bytes in a serialized block header:
// Version 4 bytes + PrevBlock 32 bytes + MerkleRoot 32 bytes +
// Timestamp 4 bytes + Bits 4 bytes + Nonce 4 bytes.
const BlockHeaderLen = 80

// BlockHeader defines information about a block and is used in the blakecoin
// block (MsgBlock) and headers (MsgHeaders) messages.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// BlockHash computes the block identifier hash for the given block header.
//
// The header is hashed with a single pass of Blake-256 over its 80-byte
// little-endian serialization.  Blakecoin never double-hashes, unlike
// SHA-256d-based chains, and the identifier doubles as the proof-of-work
// hash.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Serialization into a bytes.Buffer cannot fail for a fixed-size
	// header, so the error is ignored.
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLen))
	_ = writeBlockHeader(buf, h)
	return chainhash.HashH(buf.Bytes())
}

// Serialize encodes a block header from h into w using the blakecoin wire
// format, which is also the format hashed for proof of work.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

// Copy creates a deep copy of the header so that the original does not get
// modified when the copy is manipulated.
func (h *BlockHeader) Copy() *BlockHeader {
	clone := *h
	return &clone
}

// NewBlockHeader returns a new BlockHeader using the provided version,
// previous block hash, merkle root hash, difficulty bits, and nonce with the
// timestamp rounded down to one second precision, which is all the protocol
// supports.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits, nonce uint32,
) *BlockHeader {
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}

// readBlockHeader reads a blakecoin block header from r.
func readBlockHeader(r io.Reader, h *BlockHeader) error {
	var buf [BlockHeaderLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return errors.Wrap(err, "short block header")
	}

	h.Version = int32(binary.LittleEndian.Uint32(buf[0:4]))
	copy(h.PrevBlock[:], buf[4:36])
	copy(h.MerkleRoot[:], buf[36:68])
	h.Timestamp = time.Unix(int64(binary.LittleEndian.Uint32(buf[68:72])), 0)
	h.Bits = binary.LittleEndian.Uint32(buf[72:76])
	h.Nonce = binary.LittleEndian.Uint32(buf[76:80])
	return nil
}

// writeBlockHeader writes a blakecoin block header to w.
func writeBlockHeader(w io.Writer, h *BlockHeader) error {
	var buf [BlockHeaderLen]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(h.Version))
	copy(buf[4:36], h.PrevBlock[:])
	copy(buf[36:68], h.MerkleRoot[:])
	binary.LittleEndian.PutUint32(buf[68:72], uint32(h.Timestamp.Unix()))
	binary.LittleEndian.PutUint32(buf[72:76], h.Bits)
	binary.LittleEndian.PutUint32(buf[76:80], h.Nonce)

	if _, err := w.Write(buf[:]); err != nil {
		return errors.Wrap(err, "write block header")
	}
	return nil
}
