// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/blakecoin-community/blakecoind/types/wire"
)

// TestNetParams defines the network parameters for the test blakecoin
// network.
//
// The test network shares the mainnet genesis commitment; the networks are
// told apart by their magic bytes and the relaxed minimum-difficulty rule.
var TestNetParams = Params{
	Name:        "testnet",
	Net:         wire.TestNet,
	DefaultPort: "18773",
	DNSSeeds:    []DNSSeed{},

	GenesisBlock: genesisBlock,
	GenesisHash:  genesisHash,

	PowParams: PowParams{
		PowLimit:             mainPowLimit,
		PowLimitBits:         0x1e0fffff,
		TargetTimespan:       time.Hour,
		TargetTimePerBlock:   time.Minute * 3,
		PowClampSwitchHeight: 3500,
		ReduceMinDifficulty:  true,
		MinDiffReductionTime: time.Minute * 6, // TargetTimePerBlock * 2
		PowNoRetargeting:     false,
		GenerateSupported:    true,
	},

	CoinbaseMaturity: 100,
}
