// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/blakecoin-community/blakecoind/types/wire"
)

// mainPowLimit is the highest proof of work value a blakecoin block can
// have for the main network.  It is the value 2^236 - 1, which compresses to
// compact bits 0x1e0fffff.
var mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

// MainNetParams defines the network parameters for the main blakecoin
// network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         wire.MainNet,
	DefaultPort: "8773",
	DNSSeeds: []DNSSeed{
		{"seed.blakecoin.org", false},
		{"blakeseed.digitalpandacoin.org", false},
	},

	GenesisBlock: genesisBlock,
	GenesisHash:  genesisHash,

	PowParams: PowParams{
		PowLimit:             mainPowLimit,
		PowLimitBits:         0x1e0fffff,
		TargetTimespan:       time.Hour,       // 20 blocks
		TargetTimePerBlock:   time.Minute * 3, // 3 minutes
		PowClampSwitchHeight: 3500,
		ReduceMinDifficulty:  false,
		MinDiffReductionTime: 0,
		PowNoRetargeting:     false,
		GenerateSupported:    false,
	},

	CoinbaseMaturity: 100,
}
