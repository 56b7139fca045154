// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/blakecoin-community/blakecoind/types/chainhash"
	"github.com/blakecoin-community/blakecoind/types/wire"
)

// genesisCoinbasePhrase is the timestamp proof embedded in the genesis
// coinbase.
const genesisCoinbasePhrase = "The Guardian 7/Jul/2013 Andy Murray wins Wimbledon ending 77-year wait"

// genesisMerkleRoot is the hash of the single coinbase transaction of the
// genesis block, committed to by every network's genesis header.
var genesisMerkleRoot = chainhash.HashH([]byte(genesisCoinbasePhrase))

// genesisBlock defines the genesis block header of the main network block
// chain which serves as the public transaction ledger.
var genesisBlock = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{}, // all zeroes
	MerkleRoot: genesisMerkleRoot,
	Timestamp:  time.Unix(1373158820, 0),
	Bits:       0x1e0fffff,
	Nonce:      1315224,
}

// genesisHash is the main network genesis block hash, the first block of the
// chain.
var genesisHash = mustParseHash("000006beca9375f333ecfddec38e13027d42550989849af6c23e45ade304a7f1")

// regTestGenesisBlock reuses the mainnet commitment with the relaxed
// regression-test difficulty so blocks can be generated instantly.
var regTestGenesisBlock = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{},
	MerkleRoot: genesisMerkleRoot,
	Timestamp:  time.Unix(1373158820, 0),
	Bits:       0x207fffff,
	Nonce:      0,
}

// regTestGenesisHash is the regression test network genesis block hash.
var regTestGenesisHash = mustParseHash("076cb063afa809c14093d0cf7b389abea23d6269cb8ace7d7290982f8889d4b4")

// mustParseHash converts a display-order hash string to a chainhash.Hash and
// panics on malformed input.  It is only used for hardcoded constants.
func mustParseHash(s string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return *hash
}
