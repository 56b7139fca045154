// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// difficulty-calc inspects blakecoin difficulty targets and replays recorded
// header chains through the retarget rules.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/blakecoin-community/blakecoind/node/chaindata"
	"github.com/blakecoin-community/blakecoind/types/blocknode"
	"github.com/blakecoin-community/blakecoind/types/chaincfg"
	"github.com/blakecoin-community/blakecoind/types/chainhash"
	"github.com/blakecoin-community/blakecoind/types/pow"
	"github.com/blakecoin-community/blakecoind/types/wire"
)

func main() {
	cliApp := &cli.App{
		Name:  "difficulty-calc",
		Usage: "inspect blakecoin difficulty targets and replay retargets",
		Commands: []*cli.Command{
			{
				Name:   "targets",
				Usage:  "print the pow limit, target and work of each network",
				Action: targetsCmd,
			},
			{
				Name:   "replay",
				Usage:  "recompute every difficulty requirement over a CSV of headers",
				Flags:  replayFlags(),
				Action: replayCmd,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func targetsCmd(*cli.Context) error {
	for _, params := range []*chaincfg.Params{
		&chaincfg.MainNetParams,
		&chaincfg.TestNetParams,
		&chaincfg.RegressionNetParams,
	} {
		bits := params.PowParams.PowLimitBits
		fmt.Printf("%-8s bits=%08x target=%064x work=%d\n",
			params.Name, bits, pow.CompactToBig(bits), pow.CalcWork(bits))
	}
	return nil
}

func replayFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Value:   "./headers.csv",
			Usage:   "path to CSV with height,time,bits rows, starting at height 0",
		},
		&cli.StringFlag{
			Name:    "net",
			Aliases: []string{"n"},
			Value:   "mainnet",
			Usage:   "network rules to replay against: mainnet, testnet or regtest",
		},
	}
}

func replayCmd(c *cli.Context) error {
	params, err := netParams(c.String("net"))
	if err != nil {
		return err
	}

	records, err := newCSVStorage(c.String("file")).FetchHeaders()
	if err != nil {
		return errors.Wrap(err, "unable to load header records")
	}
	if len(records) == 0 {
		return errors.New("no header records in file")
	}
	mismatches, err := replayRecords(records, params)
	if err != nil {
		return err
	}

	fmt.Printf("replayed %d headers, %d mismatches\n", len(records), mismatches)
	if mismatches != 0 {
		return errors.Errorf("%d headers disagree with the retarget rules", mismatches)
	}
	return nil
}

// replayRecords feeds the recorded headers through the difficulty rules in
// order and returns how many disagreed with the recomputed requirement.
func replayRecords(records []headerRecord, params *chaincfg.Params) (int, error) {
	if records[0].Height != 0 {
		return 0, errors.Errorf("replay must start at height 0, file starts at %d",
			records[0].Height)
	}

	var tip *blocknode.BlockNode
	mismatches := 0
	for i, record := range records {
		if record.Height != int32(i) {
			return 0, errors.Errorf("non-contiguous records: row %d has height %d",
				i, record.Height)
		}

		recordedBits, err := record.ParseBits()
		if err != nil {
			return 0, errors.Wrapf(err, "row %d", i)
		}

		blockTime := time.Unix(record.Time, 0)
		expectedBits, err := chaindata.CalcNextRequiredDifficulty(tip, blockTime, params)
		if err != nil {
			return 0, errors.Wrapf(err, "height %d", record.Height)
		}

		boundary := record.Height%params.PowParams.DifficultyAdjustmentInterval() == 0
		if expectedBits != recordedBits {
			mismatches++
			fmt.Printf("height %-8d MISMATCH recorded=%08x expected=%08x\n",
				record.Height, recordedBits, expectedBits)
		} else if boundary && record.Height > 0 {
			fmt.Printf("height %-8d retarget bits=%08x\n", record.Height, recordedBits)
		}

		tip = appendNode(tip, record, recordedBits)
	}

	return mismatches, nil
}

// appendNode extends the replay chain with a synthetic header carrying the
// recorded time and bits.  The hashes are not the real chain's hashes, which
// is fine: the difficulty rules only read heights, timestamps and bits.
func appendNode(tip *blocknode.BlockNode, record headerRecord, bits uint32) *blocknode.BlockNode {
	prev := chainhash.Hash{}
	if tip != nil {
		prev = tip.Hash()
	}
	header := &wire.BlockHeader{
		Version:   1,
		PrevBlock: prev,
		Timestamp: time.Unix(record.Time, 0),
		Bits:      bits,
		Nonce:     uint32(record.Height),
	}
	return blocknode.NewBlockNode(header, tip)
}

func netParams(name string) (*chaincfg.Params, error) {
	switch name {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	}
	return nil, errors.Errorf("unknown network %q", name)
}

// ParseBits decodes the hex-encoded compact difficulty of a record.
func (r headerRecord) ParseBits() (uint32, error) {
	bits, err := strconv.ParseUint(r.Bits, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "bad bits %q", r.Bits)
	}
	return uint32(bits), nil
}
