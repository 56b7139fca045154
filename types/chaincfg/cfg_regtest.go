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

// regressionPowLimit is the highest proof of work value a blakecoin block
// can have for the regression test network.  It is the value 2^255 - 1.
var regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

// RegressionNetParams defines the network parameters for the regression test
// network.  Difficulty never retargets so tests can generate chains without
// mining for real.
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         wire.SimNet,
	DefaultPort: "18774",
	DNSSeeds:    []DNSSeed{},

	GenesisBlock: regTestGenesisBlock,
	GenesisHash:  regTestGenesisHash,

	PowParams: PowParams{
		PowLimit:             regressionPowLimit,
		PowLimitBits:         0x207fffff,
		TargetTimespan:       time.Hour,
		TargetTimePerBlock:   time.Minute * 3,
		PowClampSwitchHeight: 3500,
		ReduceMinDifficulty:  true,
		MinDiffReductionTime: time.Minute * 6,
		PowNoRetargeting:     true,
		GenerateSupported:    true,
	},

	CoinbaseMaturity: 100,
}
