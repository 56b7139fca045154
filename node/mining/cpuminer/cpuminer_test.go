// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cpuminer

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blakecoin-community/blakecoind/node/chaindata"
	"github.com/blakecoin-community/blakecoind/types/chaincfg"
	"github.com/blakecoin-community/blakecoind/types/chainhash"
	"github.com/blakecoin-community/blakecoind/types/wire"
)

// drainHashUpdates consumes speed monitor updates so solveHeader can be
// driven directly in tests without running the monitor goroutine.
func drainHashUpdates(miner *CPUMiner) (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-miner.updateHashes:
			case <-done:
				return
			}
		}
	}()
	return func() {
		close(done)
		wg.Wait()
	}
}

// TestSolveHeaderKnownSolution mines a fixed header template whose solution
// is known and checks both the nonce and the resulting block hash.
func TestSolveHeaderKnownSolution(t *testing.T) {
	params := &chaincfg.RegressionNetParams

	header := params.GenesisBlock
	header.Timestamp = time.Unix(1373158821, 0)
	header.Nonce = 12345 // ignored, the solver owns the nonce

	miner := New(&Config{
		ChainParams:    params,
		BestHeaderHash: func() chainhash.Hash { return chainhash.Hash{} },
	}, zerolog.Nop())
	stop := drainHashUpdates(miner)
	defer stop()

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	quit := make(chan struct{})
	require.True(t, miner.solveHeader(&header, ticker, quit))

	assert.Equal(t, uint32(0), header.Nonce)
	assert.Equal(t,
		"37e3bcad7019e05148a8b66d3ef16dafd04348ccce653813d7d302d259f3ca46",
		header.BlockHash().String())
}

// TestSolveHeaderQuit checks that a closed quit channel aborts the search
// before any work is done.
func TestSolveHeaderQuit(t *testing.T) {
	params := &chaincfg.RegressionNetParams

	header := params.GenesisBlock
	header.Bits = 0x1c000001 // practically unsolvable

	miner := New(&Config{
		ChainParams:    params,
		BestHeaderHash: func() chainhash.Hash { return chainhash.Hash{} },
	}, zerolog.Nop())

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	quit := make(chan struct{})
	close(quit)
	assert.False(t, miner.solveHeader(&header, ticker, quit))
}

// TestGenerateNHeaders mines a short regression test chain end to end: every
// solved header must build on the previous one and satisfy its claimed
// difficulty.
func TestGenerateNHeaders(t *testing.T) {
	params := &chaincfg.RegressionNetParams

	var mu sync.Mutex
	tip := params.GenesisHash
	tipTime := params.GenesisBlock.Timestamp
	height := int32(0)

	cfg := &Config{
		ChainParams: params,
		NextHeaderTemplate: func() (*wire.BlockHeader, error) {
			mu.Lock()
			defer mu.Unlock()
			return &wire.BlockHeader{
				Version:    1,
				PrevBlock:  tip,
				MerkleRoot: params.GenesisBlock.MerkleRoot,
				Timestamp:  tipTime.Add(time.Second),
				Bits:       params.PowParams.PowLimitBits,
			}, nil
		},
		SubmitHeader: func(header *wire.BlockHeader) error {
			if err := chaindata.CheckProofOfWork(header,
				params.PowParams.PowLimit); err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			tip = header.BlockHash()
			tipTime = header.Timestamp
			height++
			return nil
		},
		BestHeaderHash: func() chainhash.Hash {
			mu.Lock()
			defer mu.Unlock()
			return tip
		},
		NumWorkers: 1,
	}

	miner := New(cfg, zerolog.Nop())
	hashes, err := miner.GenerateNHeaders(3)
	require.NoError(t, err)
	require.Len(t, hashes, 3)

	assert.Equal(t, int32(3), height)
	assert.Equal(t, tip, *hashes[2])
	for _, hash := range hashes {
		require.NotNil(t, hash)
	}
	assert.False(t, miner.IsMining())
}

func TestSetNumWorkers(t *testing.T) {
	miner := New(&Config{
		ChainParams:    &chaincfg.RegressionNetParams,
		BestHeaderHash: func() chainhash.Hash { return chainhash.Hash{} },
	}, zerolog.Nop())

	miner.SetNumWorkers(4)
	assert.Equal(t, int32(4), miner.NumWorkers())

	// Negative resets to the per-core default.
	miner.SetNumWorkers(-1)
	assert.Equal(t, int32(defaultNumWorkers), miner.NumWorkers())
}
