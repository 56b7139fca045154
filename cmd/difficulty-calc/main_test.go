// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blakecoin-community/blakecoind/types/chaincfg"
)

// mainnetFixture builds 21 on-schedule mainnet records: the first window at
// minimum difficulty and the retarget row the rules would produce for it.
func mainnetFixture() []headerRecord {
	const spacing = 180
	records := make([]headerRecord, 0, 21)
	for height := int32(0); height < 20; height++ {
		records = append(records, headerRecord{
			Height: height,
			Time:   1373158820 + int64(height)*spacing,
			Bits:   "1e0fffff",
		})
	}
	// Height 20 closes the window: 19 spacings of 180s against the one
	// hour target tightens the minimum-difficulty target by 3420/3600.
	records = append(records, headerRecord{
		Height: 20,
		Time:   1373158820 + 20*spacing,
		Bits:   "1e0f3332",
	})
	return records
}

func TestReplayRecords(t *testing.T) {
	params := &chaincfg.MainNetParams

	mismatches, err := replayRecords(mainnetFixture(), params)
	require.NoError(t, err)
	assert.Zero(t, mismatches)

	// Tampering with the retarget row must be detected.
	tampered := mainnetFixture()
	tampered[20].Bits = "1e0fffff"
	mismatches, err = replayRecords(tampered, params)
	require.NoError(t, err)
	assert.Equal(t, 1, mismatches)
}

func TestReplayRecordsRejectsGaps(t *testing.T) {
	records := mainnetFixture()
	records[5].Height = 7
	_, err := replayRecords(records, &chaincfg.MainNetParams)
	assert.Error(t, err)

	_, err = replayRecords(records[3:], &chaincfg.MainNetParams)
	assert.Error(t, err)
}

// TestCSVRoundTrip saves a fixture and loads it back through gocsv.
func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headers.csv")
	storage := newCSVStorage(path)

	want := mainnetFixture()
	require.NoError(t, storage.SaveHeaders(want))

	got, err := storage.FetchHeaders()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseBits(t *testing.T) {
	bits, err := headerRecord{Bits: "1e0fffff"}.ParseBits()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1e0fffff), bits)

	for _, bad := range []string{"", "zz", "1ffffffff"} {
		_, err := headerRecord{Bits: bad}.ParseBits()
		assert.Error(t, err, fmt.Sprintf("bits %q must not parse", bad))
	}
}
