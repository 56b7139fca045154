// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blakecoin-community/blakecoind/types/chaincfg"
)

// fixedTimeSource pins AdjustedTime for deterministic timestamp checks.
type fixedTimeSource struct {
	now time.Time
}

func (s fixedTimeSource) AdjustedTime() time.Time { return s.now }

func TestCheckProofOfWork(t *testing.T) {
	params := &chaincfg.MainNetParams

	// The genesis header satisfies its own difficulty.
	header := params.GenesisBlock
	assert.NoError(t, CheckProofOfWork(&header, params.PowParams.PowLimit))

	// Tightening the claimed target by one exponent step makes the same
	// hash fail.
	badHeader := header
	badHeader.Bits = 0x1d0fffff
	err := CheckProofOfWork(&badHeader, params.PowParams.PowLimit)
	var rerr RuleError
	if assert.ErrorAs(t, err, &rerr) {
		assert.Equal(t, ErrHighHash, rerr.ErrorCode)
	}

	// A target above the network limit is rejected before hashing.
	badHeader = header
	badHeader.Bits = 0x1e7fffff
	err = CheckProofOfWork(&badHeader, params.PowParams.PowLimit)
	if assert.ErrorAs(t, err, &rerr) {
		assert.Equal(t, ErrUnexpectedDifficulty, rerr.ErrorCode)
	}

	// A zero target can never be met.
	badHeader = header
	badHeader.Bits = 0
	err = CheckProofOfWork(&badHeader, params.PowParams.PowLimit)
	if assert.ErrorAs(t, err, &rerr) {
		assert.Equal(t, ErrUnexpectedDifficulty, rerr.ErrorCode)
	}
}

func TestCheckProofOfWorkNoPoWCheckFlag(t *testing.T) {
	params := &chaincfg.MainNetParams

	// An unsolved header passes when the hash comparison is skipped, but
	// malformed bits are still rejected.
	header := params.GenesisBlock
	header.Nonce++
	assert.NoError(t, checkProofOfWork(&header, params.PowParams.PowLimit,
		BFNoPoWCheck))

	header.Bits = 0x1e7fffff
	assert.Error(t, checkProofOfWork(&header, params.PowParams.PowLimit,
		BFNoPoWCheck))
}

func TestCheckBlockHeaderSanity(t *testing.T) {
	params := &chaincfg.MainNetParams
	timeSource := fixedTimeSource{now: params.GenesisBlock.Timestamp}

	header := params.GenesisBlock
	assert.NoError(t, CheckBlockHeaderSanity(&header, params, timeSource, BFNone))

	var rerr RuleError

	t.Run("sub-second precision", func(t *testing.T) {
		bad := params.GenesisBlock
		bad.Timestamp = bad.Timestamp.Add(50 * time.Millisecond)
		err := CheckBlockHeaderSanity(&bad, params, timeSource, BFNoPoWCheck)
		if assert.ErrorAs(t, err, &rerr) {
			assert.Equal(t, ErrInvalidTime, rerr.ErrorCode)
		}
	})

	t.Run("too far in the future", func(t *testing.T) {
		bad := params.GenesisBlock
		bad.Timestamp = timeSource.now.Add(MaxTimeOffsetSeconds*time.Second + time.Second)
		err := CheckBlockHeaderSanity(&bad, params, timeSource, BFNoPoWCheck)
		if assert.ErrorAs(t, err, &rerr) {
			assert.Equal(t, ErrTimeTooNew, rerr.ErrorCode)
		}
	})

	t.Run("exactly at the future limit", func(t *testing.T) {
		good := params.GenesisBlock
		good.Timestamp = timeSource.now.Add(MaxTimeOffsetSeconds * time.Second)
		assert.NoError(t, CheckBlockHeaderSanity(&good, params, timeSource,
			BFNoPoWCheck))
	})
}
