// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pow implements compact difficulty target math and the
// proof-of-work check.
package pow

import (
	"math/big"

	"github.com/blakecoin-community/blakecoind/types/chainhash"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// oneLsh256 is 1 shifted left 256 bits.  It is defined here to avoid
	// the overhead of creating it multiple times.
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)
)

// HashToBig converts a chainhash.Hash into a big.Int that can be used to
// perform math comparisons.
func HashToBig(hash *chainhash.Hash) *big.Int {
	// A Hash is in little-endian, but the big package wants the bytes in
	// big-endian, so reverse them.
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}

	return new(big.Int).SetBytes(buf[:])
}

// CompactToBig converts a compact representation of a whole number N to an
// unsigned 32-bit number.  The representation is similar to IEEE754 floating
// point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa.  They are broken out as follows:
//
//	* the most significant 8 bits represent the unsigned base 256 exponent
// 	* bit 23 (the 24th bit) represents the sign bit
//	* the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
// 	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// This compact form is only used to encode unsigned 256-bit numbers which
// represent difficulty targets, thus there really is not a need for a sign
// bit, but it is implemented here to stay consistent with blakecoind.
func CompactToBig(compact uint32) *big.Int {
	target, _, _ := CompactToBigWithFlags(compact)
	return target
}

// CompactToBigWithFlags performs the same conversion as CompactToBig and
// additionally reports whether the sign bit was set and whether the encoded
// value overflows a 256-bit number.  Proof-of-work validation rejects targets
// with either flag raised.
func CompactToBigWithFlags(compact uint32) (target *big.Int, negative, overflow bool) {
	// Extract the mantissa, sign bit, and exponent.
	mantissa := compact & 0x007fffff
	negative = compact&0x00800000 != 0 && mantissa != 0
	exponent := uint(compact >> 24)

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes to represent the full 256-bit number.  So,
	// treat the exponent as the number of bytes and shift the mantissa
	// right or left accordingly.  This is equivalent to:
	// N = mantissa * 256^(exponent-3)
	bn := new(big.Int)
	if exponent <= 3 {
		mantissa >>= 8 * (3 - uint32(exponent))
		bn.SetInt64(int64(mantissa))
	} else {
		bn.SetInt64(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	overflow = mantissa != 0 && exponent > 34 ||
		bn.Cmp(oneLsh256) >= 0

	// Make it negative if the sign bit is set.
	if negative {
		bn = bn.Neg(bn)
	}

	return bn, negative, overflow
}

// BigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number.  The compact representation only provides 23 bits
// of precision, so values larger than (2^23 - 1) only encode the most
// significant digits of the number.  See CompactToBig for details.
func BigToCompact(n *big.Int) uint32 {
	// No need to do any work if it's zero.
	if n.Sign() == 0 {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes.  So, shift the number right or left
	// accordingly.  This is equivalent to:
	// mantissa = mantissa / 256^(exponent-3)
	var mantissa uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		// Use a copy to avoid modifying the caller's original number.
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23-bits, so divide the number by 256
	// and increment the exponent accordingly.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	// Pack the exponent, sign bit, and mantissa into an unsigned 32-bit
	// int and return it.
	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}

// CalcWork calculates a work value from difficulty bits.  Blakecoin increases
// the effective work of the chain with the most valid proof of work, so a
// larger difficulty (smaller target) yields a larger work value.
//
// The work is 2^256 / (target+1).
func CalcWork(bits uint32) *big.Int {
	// Return a work value of zero if the passed difficulty bits represent
	// a negative number. Note this should not happen in practice with valid
	// blocks, but an invalid block could trigger it.
	difficultyNum, negative, _ := CompactToBigWithFlags(bits)
	if difficultyNum.Sign() <= 0 || negative {
		return big.NewInt(0)
	}

	// (1 << 256) / (difficultyNum + 1)
	denominator := new(big.Int).Add(difficultyNum, bigOne)
	return new(big.Int).Div(oneLsh256, denominator)
}

// CheckProofOfWork reports whether hash satisfies the target difficulty
// encoded in bits, with the expanded target constrained to (0, powLimit].
//
// A malformed target (negative, zero, overflowing, or above the network
// limit) simply fails the check; at this layer it is indistinguishable from
// a hash above the target and callers must reject the block either way.
func CheckProofOfWork(hash *chainhash.Hash, bits uint32, powLimit *big.Int) bool {
	target, negative, overflow := CompactToBigWithFlags(bits)
	if negative || overflow || target.Sign() <= 0 {
		return false
	}
	if target.Cmp(powLimit) > 0 {
		return false
	}

	return HashToBig(hash).Cmp(target) <= 0
}
