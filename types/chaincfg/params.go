// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters for the supported
// blakecoin networks.
package chaincfg

import (
	"math/big"
	"time"

	"github.com/blakecoin-community/blakecoind/types/chainhash"
	"github.com/blakecoin-community/blakecoind/types/wire"
)

// bigOne is 1 represented as a big.Int.  It is defined here to avoid the
// overhead of creating it multiple times.
var bigOne = big.NewInt(1)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering by service
	// flags.
	HasFiltering bool
}

// PowParams defines the proof-of-work rules of a network.
type PowParams struct {
	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// between difficulty retargets.  For blakecoin this is one hour, i.e.
	// one 20-block window.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block: three minutes.
	TargetTimePerBlock time.Duration

	// PowClampSwitchHeight is the height at which the maximum per-retarget
	// difficulty increase tightens from 15% to 3%.  This is a one-time
	// historical rule change, not a tunable policy.
	PowClampSwitchHeight int32

	// ReduceMinDifficulty defines whether the network should reduce the
	// minimum required difficulty after a long enough period of time has
	// passed without finding a block.  This is really only useful for test
	// networks.
	ReduceMinDifficulty bool

	// MinDiffReductionTime is the amount of time after which the minimum
	// required difficulty should be reduced when a block hasn't been found.
	//
	// NOTE: This only applies if ReduceMinDifficulty is true.
	MinDiffReductionTime time.Duration

	// PowNoRetargeting defines whether the network has difficulty
	// retargeting enabled or not.  This is really only useful for test
	// networks.
	PowNoRetargeting bool

	// GenerateSupported specifies whether or not CPU mining is allowed.
	GenerateSupported bool
}

// DifficultyAdjustmentInterval is the number of blocks between difficulty
// retargets: TargetTimespan / TargetTimePerBlock, 20 blocks for blakecoin.
func (p *PowParams) DifficultyAdjustmentInterval() int32 {
	return int32(p.TargetTimespan / p.TargetTimePerBlock)
}

// Params defines a blakecoin network by its parameters.  These parameters
// may be used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BlakecoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// GenesisBlock defines the first block of the chain.
	GenesisBlock wire.BlockHeader

	// GenesisHash is the starting block hash.
	GenesisHash chainhash.Hash

	// PowParams holds the proof-of-work rules.
	PowParams PowParams

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins can be spent.
	CoinbaseMaturity uint16
}
