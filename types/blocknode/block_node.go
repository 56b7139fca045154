// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blocknode provides the in-memory view of the block header chain
// that consensus code walks: heights, difficulty bits, timestamps, and
// ancestor lookups.  The nodes only carry header data; block and transaction
// storage belongs to other components.
package blocknode

import (
	"math/big"
	"sort"
	"time"

	"github.com/blakecoin-community/blakecoind/types/chainhash"
	"github.com/blakecoin-community/blakecoind/types/pow"
	"github.com/blakecoin-community/blakecoind/types/wire"
)

// medianTimeBlocks is the number of previous blocks which should be
// used to calculate the median time used to validate block timestamps.
const medianTimeBlocks = 11

// zeroHash is the zero value hash (all zeros), used as the previous block
// hash of the genesis block.
var zeroHash chainhash.Hash

// BlockNode represents a block within the block chain and is primarily used
// to aid in selecting the best chain to be the main chain.
type BlockNode struct {
	// parent is the parent block for this node.
	parent *BlockNode

	// hash is the single Blake-256 of the serialized block header.
	hash chainhash.Hash

	// workSum is the total amount of work in the chain up to and including
	// this node.
	workSum *big.Int

	// height is the position in the block chain.
	height int32

	// Some fields from block headers to aid in best chain selection and
	// reconstructing headers from memory.  These must be treated as
	// immutable.
	version    int32
	bits       uint32
	nonce      uint32
	timestamp  int64
	merkleRoot chainhash.Hash
}

// NewBlockNode returns a new block node for the given block header and parent
// node, calculating the height and workSum from the respective fields on the
// parent.  This function is NOT safe for concurrent access.
func NewBlockNode(header *wire.BlockHeader, parent *BlockNode) *BlockNode {
	node := &BlockNode{
		hash:       header.BlockHash(),
		workSum:    pow.CalcWork(header.Bits),
		version:    header.Version,
		bits:       header.Bits,
		nonce:      header.Nonce,
		timestamp:  header.Timestamp.Unix(),
		merkleRoot: header.MerkleRoot,
	}
	if parent != nil {
		node.parent = parent
		node.height = parent.height + 1
		node.workSum = node.workSum.Add(parent.workSum, node.workSum)
	}
	return node
}

func (node *BlockNode) Hash() chainhash.Hash { return node.hash }
func (node *BlockNode) Height() int32        { return node.height }
func (node *BlockNode) Bits() uint32         { return node.bits }
func (node *BlockNode) Timestamp() int64     { return node.timestamp }
func (node *BlockNode) Parent() *BlockNode   { return node.parent }
func (node *BlockNode) WorkSum() *big.Int    { return node.workSum }

// Header constructs a block header from the node and returns it.
//
// This function is safe for concurrent access since all accessed fields are
// immutable.
func (node *BlockNode) Header() wire.BlockHeader {
	prevHash := &zeroHash
	if node.parent != nil {
		prevHash = &node.parent.hash
	}
	return wire.BlockHeader{
		Version:    node.version,
		PrevBlock:  *prevHash,
		MerkleRoot: node.merkleRoot,
		Timestamp:  time.Unix(node.timestamp, 0),
		Bits:       node.bits,
		Nonce:      node.nonce,
	}
}

// Ancestor returns the ancestor block node at the provided height by
// following the chain backwards from this node.  The returned block will be
// nil when a height is requested that is after the height of the passed node
// or is less than zero.
//
// This function is safe for concurrent access.
func (node *BlockNode) Ancestor(height int32) *BlockNode {
	if height < 0 || height > node.height {
		return nil
	}

	n := node
	for ; n != nil && n.height != height; n = n.parent {
		// Intentionally left blank
	}

	return n
}

// RelativeAncestor returns the ancestor block node a relative 'distance'
// blocks before this node.  This is equivalent to calling Ancestor with the
// node's height minus provided distance.
//
// This function is safe for concurrent access.
func (node *BlockNode) RelativeAncestor(distance int32) *BlockNode {
	return node.Ancestor(node.height - distance)
}

// CalcPastMedianTime calculates the median time of the previous few blocks
// prior to, and including, the block node.
//
// This function is safe for concurrent access.
func (node *BlockNode) CalcPastMedianTime() time.Time {
	// Create a slice of the previous few block timestamps used to calculate
	// the median per the number defined by the constant medianTimeBlocks.
	timestamps := make([]int64, medianTimeBlocks)
	numNodes := 0
	iterNode := node
	for i := 0; i < medianTimeBlocks && iterNode != nil; i++ {
		timestamps[i] = iterNode.timestamp
		numNodes++

		iterNode = iterNode.parent
	}

	// Prune the slice to the actual number of available timestamps which
	// will be fewer than desired near the beginning of the block chain
	// and sort them.
	timestamps = timestamps[:numNodes]
	sort.Slice(timestamps, func(i, j int) bool {
		return timestamps[i] < timestamps[j]
	})

	// NOTE: The consensus rules incorrectly calculate the median for even
	// numbers of blocks.  A true median averages the middle two elements
	// for a set with an even number of elements in it.  Since the constant
	// for the previous number of blocks to be used is odd, this is only an
	// issue for a few blocks near the beginning of the chain.  This code
	// follows suit to ensure the same rules are used.
	medianTimestamp := timestamps[numNodes/2]
	return time.Unix(medianTimestamp, 0)
}
