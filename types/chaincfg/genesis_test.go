// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blakecoin-community/blakecoind/types/pow"
)

// TestGenesisBlock checks that the hardcoded genesis hashes really are the
// header hashes of the hardcoded genesis headers.
func TestGenesisBlock(t *testing.T) {
	hash := MainNetParams.GenesisBlock.BlockHash()
	assert.Equal(t, MainNetParams.GenesisHash, hash,
		"mainnet genesis hash mismatch")

	hash = RegressionNetParams.GenesisBlock.BlockHash()
	assert.Equal(t, RegressionNetParams.GenesisHash, hash,
		"regtest genesis hash mismatch")

	// Testnet shares the mainnet genesis commitment.
	assert.Equal(t, MainNetParams.GenesisHash, TestNetParams.GenesisHash)
	assert.Equal(t, MainNetParams.GenesisBlock, TestNetParams.GenesisBlock)
}

// TestGenesisMerkleRoot pins the coinbase commitment so an accidental change
// to either the phrase or the hash engine cannot slip through.
func TestGenesisMerkleRoot(t *testing.T) {
	assert.Equal(t,
		"3a35e7b63670567bcd5318426fc15a7a77484bcca0acfc00fa62e377514b15fc",
		genesisMerkleRoot.String())
}

// TestGenesisProofOfWork makes sure each genesis header actually satisfies
// the difficulty it claims.
func TestGenesisProofOfWork(t *testing.T) {
	for _, params := range []*Params{&MainNetParams, &TestNetParams, &RegressionNetParams} {
		hash := params.GenesisBlock.BlockHash()
		ok := pow.CheckProofOfWork(&hash, params.GenesisBlock.Bits,
			params.PowParams.PowLimit)
		assert.True(t, ok, "%s genesis fails its own proof of work", params.Name)
	}
}

func TestDifficultyAdjustmentInterval(t *testing.T) {
	assert.Equal(t, int32(20), MainNetParams.PowParams.DifficultyAdjustmentInterval())
	assert.Equal(t, int32(20), TestNetParams.PowParams.DifficultyAdjustmentInterval())
}

// TestPowLimitsMatchCompactBits checks that the big integer pow limits agree
// with their compact encodings.
func TestPowLimitsMatchCompactBits(t *testing.T) {
	for _, params := range []*Params{&MainNetParams, &TestNetParams, &RegressionNetParams} {
		limitFromBits := pow.CompactToBig(params.PowParams.PowLimitBits)
		assert.True(t, limitFromBits.Cmp(params.PowParams.PowLimit) <= 0,
			"%s compact pow limit exceeds the big.Int limit", params.Name)
		assert.Equal(t, params.PowParams.PowLimitBits,
			pow.BigToCompact(limitFromBits),
			"%s pow limit bits do not round-trip", params.Name)
	}
}
