// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"math/big"
	"testing"

	"github.com/blakecoin-community/blakecoind/types/chainhash"
	"github.com/stretchr/testify/assert"
)

func TestCompactToBig(t *testing.T) {
	tests := []struct {
		compact uint32
		want    *big.Int
	}{
		{0, big.NewInt(0)},
		{0x01003456, big.NewInt(0)},
		{0x01123456, big.NewInt(0x12)},
		{0x02008000, big.NewInt(0x80)},
		{0x03123456, big.NewInt(0x123456)},
		{0x04123456, big.NewInt(0x12345600)},
		{0x05009234, big.NewInt(0x92340000)},
		// Mainnet pow limit.
		{0x1e0fffff, new(big.Int).Lsh(big.NewInt(0x0fffff), 216)},
	}

	for _, test := range tests {
		got := CompactToBig(test.compact)
		if got.Cmp(test.want) != 0 {
			t.Errorf("CompactToBig(%08x): got %x, want %x", test.compact, got, test.want)
		}
	}
}

func TestBigToCompactRoundTrip(t *testing.T) {
	for _, compact := range []uint32{
		0x1d00ffff, 0x1e0fffff, 0x207fffff, 0x1c654657, 0x1b0404cb,
	} {
		assert.Equal(t, compact, BigToCompact(CompactToBig(compact)),
			"compact %08x", compact)
	}

	assert.Equal(t, uint32(0), BigToCompact(big.NewInt(0)))

	// Mantissa overflow into the sign bit bumps the exponent.
	n := big.NewInt(0x00ffffff)
	assert.Equal(t, uint32(0x04<<24|0x00ffff), BigToCompact(n))
}

func TestCompactToBigWithFlags(t *testing.T) {
	// Sign bit with a non-zero mantissa is negative.
	neg, negative, _ := CompactToBigWithFlags(0x03923456)
	assert.True(t, negative)
	assert.Equal(t, -1, neg.Sign())

	// Sign bit with a zero mantissa is just zero.
	zero, negative, _ := CompactToBigWithFlags(0x04800000)
	assert.False(t, negative)
	assert.Equal(t, 0, zero.Sign())

	// Exponent far past 32 bytes overflows 256 bits.
	_, _, overflow := CompactToBigWithFlags(0xff123456)
	assert.True(t, overflow)

	_, _, overflow = CompactToBigWithFlags(0x1e0fffff)
	assert.False(t, overflow)
}

func TestCalcWork(t *testing.T) {
	// Work of the all-ones 255-bit target is 2^256/(2^255) = 2.
	regtestLimit := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	work := CalcWork(BigToCompact(regtestLimit))
	assert.Equal(t, int64(2), work.Int64())

	// Negative and zero targets carry no work.
	assert.Equal(t, int64(0), CalcWork(0x03923456).Int64())
	assert.Equal(t, int64(0), CalcWork(0).Int64())
}

// hashFromBig builds a chainhash.Hash whose integer interpretation equals n.
func hashFromBig(t *testing.T, n *big.Int) chainhash.Hash {
	t.Helper()
	var hash chainhash.Hash
	b := n.Bytes()
	if len(b) > chainhash.HashSize {
		t.Fatalf("value does not fit a hash: %x", b)
	}
	// big.Int bytes are big-endian, hash bytes are little-endian.
	for i, v := range b {
		hash[len(b)-1-i] = v
	}
	return hash
}

func TestCheckProofOfWorkBoundary(t *testing.T) {
	const bits = uint32(0x1e0fffff)
	powLimit := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 236), big.NewInt(1))
	target := CompactToBig(bits)

	exactly := hashFromBig(t, target)
	below := hashFromBig(t, new(big.Int).Sub(target, big.NewInt(1)))
	above := hashFromBig(t, new(big.Int).Add(target, big.NewInt(1)))

	assert.True(t, CheckProofOfWork(&exactly, bits, powLimit), "hash == target must pass")
	assert.True(t, CheckProofOfWork(&below, bits, powLimit), "hash < target must pass")
	assert.False(t, CheckProofOfWork(&above, bits, powLimit), "hash > target must fail")

	// Round-trip sanity: HashToBig must invert hashFromBig.
	assert.Equal(t, 0, HashToBig(&exactly).Cmp(target))
}

func TestCheckProofOfWorkMalformedTarget(t *testing.T) {
	powLimit := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 236), big.NewInt(1))
	var zeroHash chainhash.Hash

	// Negative target.
	assert.False(t, CheckProofOfWork(&zeroHash, 0x03923456, powLimit))
	// Zero target.
	assert.False(t, CheckProofOfWork(&zeroHash, 0, powLimit))
	// Overflowing target.
	assert.False(t, CheckProofOfWork(&zeroHash, 0xff123456, powLimit))
	// Target above the network limit.
	assert.False(t, CheckProofOfWork(&zeroHash, 0x207fffff, powLimit))
	// An in-range target accepts the trivially small zero hash.
	assert.True(t, CheckProofOfWork(&zeroHash, 0x1e0fffff, powLimit))
}
