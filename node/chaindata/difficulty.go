// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaindata

import (
	"fmt"
	"math/big"
	"time"

	"github.com/blakecoin-community/blakecoind/types/blocknode"
	"github.com/blakecoin-community/blakecoind/types/chaincfg"
	"github.com/blakecoin-community/blakecoind/types/pow"
)

// CalcNextWorkRequired calculates the required difficulty for the block after
// the passed previous block node based on the difficulty retarget rules.
//
// The raw elapsed time between the first and last block of the closing window
// is clamped before the proportional adjustment:
//
//   - A window faster than a quarter of the target timespan may only raise
//     difficulty by 3% once the chain has passed the clamp switch height.
//   - Below the switch height the increase is instead capped at 15%.
//   - A slow window may at most double the target, halving difficulty.
//
// The result is capped at the network proof of work limit.
func CalcNextWorkRequired(lastNode *blocknode.BlockNode, firstBlockTime int64,
	params *chaincfg.Params) uint32 {
	powParams := &params.PowParams

	// Return the previous block's difficulty requirements if this network
	// has difficulty retargeting disabled.
	if powParams.PowNoRetargeting {
		return lastNode.Bits()
	}

	targetTimespan := int64(powParams.TargetTimespan / time.Second)
	clampHeight := powParams.PowClampSwitchHeight

	actualTimespan := lastNode.Timestamp() - firstBlockTime
	adjustedTimespan := actualTimespan
	switch {
	case actualTimespan < targetTimespan/4 && lastNode.Height() >= clampHeight:
		adjustedTimespan = targetTimespan * 100 / 103
	case actualTimespan < targetTimespan*100/115 && lastNode.Height() < clampHeight:
		adjustedTimespan = targetTimespan * 100 / 115
	}
	if adjustedTimespan > targetTimespan*2 {
		adjustedTimespan = targetTimespan * 2
	}

	// Calculate new target difficulty as:
	//  currentDifficulty * (adjustedTimespan / targetTimespan)
	// The result uses integer division which means it will be slightly
	// rounded down.
	oldTarget := pow.CompactToBig(lastNode.Bits())
	newTarget := new(big.Int).Mul(oldTarget, big.NewInt(adjustedTimespan))
	newTarget.Div(newTarget, big.NewInt(targetTimespan))

	// Limit new value to the proof of work limit.
	if newTarget.Cmp(powParams.PowLimit) > 0 {
		newTarget.Set(powParams.PowLimit)
	}

	// Log new target difficulty and return it.  The new target logging is
	// intentionally converting the bits back to a number instead of using
	// newTarget since conversion to the compact representation loses
	// precision.
	newTargetBits := pow.BigToCompact(newTarget)
	log.Debug().
		Int32("height", lastNode.Height()+1).
		Str("oldBits", fmt.Sprintf("%08x", lastNode.Bits())).
		Str("newBits", fmt.Sprintf("%08x", newTargetBits)).
		Int64("actualTimespan", actualTimespan).
		Int64("adjustedTimespan", adjustedTimespan).
		Int64("targetTimespan", targetTimespan).
		Msg("difficulty retarget")

	return newTargetBits
}

// CalcNextRequiredDifficulty calculates the required difficulty for the block
// after the passed previous block node based on the difficulty retarget rules.
// Off-window blocks simply inherit the previous requirement; a new requirement
// is only computed when the next block closes a retarget window.
func CalcNextRequiredDifficulty(lastNode *blocknode.BlockNode,
	newBlockTime time.Time, params *chaincfg.Params) (uint32, error) {
	powParams := &params.PowParams

	// Genesis block.
	if lastNode == nil {
		return powParams.PowLimitBits, nil
	}

	blocksPerRetarget := powParams.DifficultyAdjustmentInterval()

	// Return the previous block's difficulty requirements if this block is
	// not at a difficulty retarget interval.
	if (lastNode.Height()+1)%blocksPerRetarget != 0 {
		// For networks that support it, allow special reduction of the
		// required difficulty once too much time has elapsed without
		// mining a block.
		if powParams.ReduceMinDifficulty {
			// Return minimum difficulty when more than the desired
			// amount of time has elapsed without mining a block.
			reductionTime := int64(powParams.MinDiffReductionTime / time.Second)
			allowMinTime := lastNode.Timestamp() + reductionTime
			if newBlockTime.Unix() > allowMinTime {
				return powParams.PowLimitBits, nil
			}

			// The block was mined within the desired timeframe, so
			// return the difficulty for the last block which did
			// not have the special minimum difficulty rule applied.
			return findPrevTestNetDifficulty(lastNode, params), nil
		}

		// For the main network (or any unrecognized networks), simply
		// return the previous block's difficulty requirements.
		return lastNode.Bits(), nil
	}

	// Get the block node at the previous retarget (targetTimespan worth of
	// blocks).
	firstNode := lastNode.RelativeAncestor(blocksPerRetarget - 1)
	if firstNode == nil {
		return 0, AssertError("unable to obtain previous retarget block")
	}

	return CalcNextWorkRequired(lastNode, firstNode.Timestamp(), params), nil
}

// findPrevTestNetDifficulty returns the difficulty of the previous block
// which did not have the special testnet minimum difficulty rule applied.
func findPrevTestNetDifficulty(startNode *blocknode.BlockNode,
	params *chaincfg.Params) uint32 {
	powParams := &params.PowParams
	blocksPerRetarget := powParams.DifficultyAdjustmentInterval()

	// Search backwards through the chain for the last block without the
	// special rule applied.
	iterNode := startNode
	for iterNode != nil && iterNode.Height()%blocksPerRetarget != 0 &&
		iterNode.Bits() == powParams.PowLimitBits {
		iterNode = iterNode.Parent()
	}

	// Return the found difficulty or the minimum difficulty if no
	// appropriate block was found.
	lastBits := powParams.PowLimitBits
	if iterNode != nil {
		lastBits = iterNode.Bits()
	}
	return lastBits
}
