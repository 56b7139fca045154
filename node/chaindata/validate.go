// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"fmt"
	"math/big"
	"time"

	"github.com/blakecoin-community/blakecoind/types/chaincfg"
	"github.com/blakecoin-community/blakecoind/types/pow"
	"github.com/blakecoin-community/blakecoind/types/wire"
)

// MaxTimeOffsetSeconds is the maximum number of seconds a block time is
// allowed to be ahead of the current time.
const MaxTimeOffsetSeconds = 2 * 60 * 60

// BehaviorFlags is a bitmask defining tweaks to the normal behavior when
// performing chain processing and consensus rules checks.
type BehaviorFlags uint32

const (
	// BFNoPoWCheck may be set to indicate the proof of work check which
	// ensures a block hashes to a value less than the required target will
	// not be performed.
	BFNoPoWCheck BehaviorFlags = 1 << iota

	// BFNone is a convenience value to specifically indicate no flags.
	BFNone BehaviorFlags = 0
)

// TimeSource provides the current time the validation rules compare block
// timestamps against.  Networked nodes typically offset this by the median
// of their peers' clocks.
type TimeSource interface {
	// AdjustedTime returns the current time.
	AdjustedTime() time.Time
}

type systemTimeSource struct{}

func (systemTimeSource) AdjustedTime() time.Time { return time.Now() }

// NewSystemTimeSource returns a TimeSource backed by the local system clock.
func NewSystemTimeSource() TimeSource {
	return systemTimeSource{}
}

// checkProofOfWork ensures the block header bits which indicate the target
// difficulty is in min/max range and that the block hash is less than the
// target difficulty as claimed.
//
// The flags modify the behavior of this function as follows:
//   - BFNoPoWCheck: The check to ensure the block hash is less than the target
//     difficulty is not performed.
func checkProofOfWork(header *wire.BlockHeader, powLimit *big.Int,
	flags BehaviorFlags) error {
	// The target difficulty must be larger than zero.
	target := pow.CompactToBig(header.Bits)
	if target.Sign() <= 0 {
		str := fmt.Sprintf("block target difficulty of %064x is too low", target)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	// The target difficulty must be less than the maximum allowed.
	if target.Cmp(powLimit) > 0 {
		str := fmt.Sprintf("block target difficulty of %064x is "+
			"higher than max of %064x", target, powLimit)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	// The block hash must be less than the claimed target unless the flag
	// to avoid proof of work checks is set.
	if flags&BFNoPoWCheck != BFNoPoWCheck {
		// The block hash must be less than the claimed target.
		hash := header.BlockHash()
		hashNum := pow.HashToBig(&hash)
		if hashNum.Cmp(target) > 0 {
			str := fmt.Sprintf("block hash of %064x is higher than "+
				"expected max of %064x", hashNum, target)
			return ruleError(ErrHighHash, str)
		}
	}

	return nil
}

// CheckProofOfWork ensures the block header bits which indicate the target
// difficulty is in min/max range and that the block hash is less than the
// target difficulty as claimed.
func CheckProofOfWork(header *wire.BlockHeader, powLimit *big.Int) error {
	return checkProofOfWork(header, powLimit, BFNone)
}

// CheckBlockHeaderSanity performs some preliminary checks on a block header to
// ensure it is sane before continuing with processing.  These checks are
// context free: they need the chain parameters and a clock, but no view of
// the chain itself.
//
// The flags do not modify the behavior of this function directly, however
// they are needed to pass along to checkProofOfWork.
func CheckBlockHeaderSanity(header *wire.BlockHeader, params *chaincfg.Params,
	timeSource TimeSource, flags BehaviorFlags) error {
	// Ensure the proof of work bits in the block header is in min/max
	// range and the block hash is less than the target value described by
	// the bits.
	err := checkProofOfWork(header, params.PowParams.PowLimit, flags)
	if err != nil {
		return err
	}

	// A block timestamp must not have a greater precision than one second.
	// Go time.Time values support nanosecond precision whereas the
	// consensus rules only apply to seconds, so weed those out here.
	if !header.Timestamp.Equal(time.Unix(header.Timestamp.Unix(), 0)) {
		str := fmt.Sprintf("block timestamp of %v has a higher "+
			"precision than one second", header.Timestamp)
		return ruleError(ErrInvalidTime, str)
	}

	// Ensure the block time is not too far in the future.
	maxTimestamp := timeSource.AdjustedTime().Add(time.Second *
		MaxTimeOffsetSeconds)
	if header.Timestamp.After(maxTimestamp) {
		str := fmt.Sprintf("block timestamp of %v is too far in the "+
			"future", header.Timestamp)
		return ruleError(ErrTimeTooNew, str)
	}

	return nil
}
