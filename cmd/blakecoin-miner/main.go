// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// blakecoin-miner is a standalone CPU mining harness.  It extends an
// in-memory header chain from the network genesis, asking the difficulty
// rules for each next target, and reports progress through logs and an
// optional prometheus endpoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/blakecoin-community/blakecoind/corelog"
	"github.com/blakecoin-community/blakecoind/node/chaindata"
	"github.com/blakecoin-community/blakecoind/node/mining/cpuminer"
	"github.com/blakecoin-community/blakecoind/types/blocknode"
	"github.com/blakecoin-community/blakecoind/types/chaincfg"
	"github.com/blakecoin-community/blakecoind/types/chainhash"
	"github.com/blakecoin-community/blakecoind/types/wire"
)

func main() {
	app := &miningApp{}
	cliApp := &cli.App{
		Name:   "blakecoin-miner",
		Usage:  "mine blakecoin headers with the CPU",
		Flags:  app.initFlags(),
		Before: app.initConfig,
		Action: app.mineCmd,
	}

	if err := cliApp.Run(os.Args); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

type miningApp struct {
	config Config
	params *chaincfg.Params
}

func (app *miningApp) initFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Value:   "",
			Usage:   "path to optional yaml configuration",
		},
		&cli.StringFlag{
			Name:    "net",
			Aliases: []string{"n"},
			Value:   "regtest",
			Usage:   "network to mine on: mainnet, testnet or regtest",
		},
		&cli.UintFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Value:   0,
			Usage:   "number of mining workers, 0 selects one per core",
		},
		&cli.Uint64Flag{
			Name:    "blocks",
			Aliases: []string{"b"},
			Value:   0,
			Usage:   "stop after this many solved headers, 0 mines until interrupted",
		},
		&cli.StringFlag{
			Name:  "metrics-addr",
			Value: "",
			Usage: "listen address for the prometheus /metrics endpoint",
		},
	}
}

func (app *miningApp) initConfig(c *cli.Context) error {
	var err error
	app.config, err = parseConfig(c.String("config"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	switch name := c.String("net"); name {
	case "mainnet":
		app.params = &chaincfg.MainNetParams
	case "testnet":
		app.params = &chaincfg.TestNetParams
	case "regtest":
		app.params = &chaincfg.RegressionNetParams
	default:
		return cli.Exit(errors.Errorf("unknown network %q", name), 1)
	}

	if !app.params.PowParams.GenerateSupported {
		return cli.Exit(errors.Errorf("CPU mining is not supported on %s",
			app.params.Name), 1)
	}
	return nil
}

func (app *miningApp) mineCmd(c *cli.Context) error {
	logger := corelog.New("miner", corelog.DefaultLevel, app.config.Log)
	chaindata.UseLogger(logger)

	chain := newHeaderChain(app.params)
	minerCfg := &cpuminer.Config{
		ChainParams:        app.params,
		NextHeaderTemplate: chain.nextTemplate,
		SubmitHeader:       chain.submit,
		BestHeaderHash:     chain.bestHash,
		NumWorkers:         uint32(c.Uint("workers")),
	}
	miner := cpuminer.New(minerCfg, logger)

	if addr := c.String("metrics-addr"); addr != "" {
		if err := miner.Metrics().Register(prometheus.DefaultRegisterer); err != nil {
			return errors.Wrap(err, "unable to register miner metrics")
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			logger.Info().Str("addr", addr).Msg("serving prometheus metrics")
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Error().Err(err).Msg("metrics listener failed")
			}
		}()
	}

	logger.Info().
		Str("network", app.params.Name).
		Stringer("genesis", &app.params.GenesisHash).
		Msg("mining from genesis")

	if n := c.Uint64("blocks"); n > 0 {
		hashes, err := miner.GenerateNHeaders(uint32(n))
		if err != nil {
			return err
		}
		for i, hash := range hashes {
			fmt.Printf("%d %s\n", i+1, hash)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()
	miner.Run(ctx)
	return nil
}

// headerChain is the miner's in-memory view of the chain it is extending.
type headerChain struct {
	mu     sync.Mutex
	params *chaincfg.Params
	tip    *blocknode.BlockNode
}

func newHeaderChain(params *chaincfg.Params) *headerChain {
	genesis := params.GenesisBlock
	return &headerChain{
		params: params,
		tip:    blocknode.NewBlockNode(&genesis, nil),
	}
}

// nextTemplate builds the header the miner should solve next.  The template
// timestamp is the current time clamped to be strictly after the past median,
// and the difficulty comes from the retarget rules.
func (chain *headerChain) nextTemplate() (*wire.BlockHeader, error) {
	chain.mu.Lock()
	defer chain.mu.Unlock()

	blockTime := time.Unix(time.Now().Unix(), 0)
	if median := chain.tip.CalcPastMedianTime(); !blockTime.After(median) {
		blockTime = median.Add(time.Second)
	}

	bits, err := chaindata.CalcNextRequiredDifficulty(chain.tip, blockTime, chain.params)
	if err != nil {
		return nil, err
	}

	tipHash := chain.tip.Hash()
	return &wire.BlockHeader{
		Version:    1,
		PrevBlock:  tipHash,
		MerkleRoot: chain.params.GenesisBlock.MerkleRoot,
		Timestamp:  blockTime,
		Bits:       bits,
	}, nil
}

// submit validates a solved header against the consensus sanity rules and
// advances the tip.
func (chain *headerChain) submit(header *wire.BlockHeader) error {
	err := chaindata.CheckBlockHeaderSanity(header, chain.params,
		chaindata.NewSystemTimeSource(), chaindata.BFNone)
	if err != nil {
		return err
	}

	chain.mu.Lock()
	defer chain.mu.Unlock()
	chain.tip = blocknode.NewBlockNode(header, chain.tip)
	return nil
}

func (chain *headerChain) bestHash() chainhash.Hash {
	chain.mu.Lock()
	defer chain.mu.Unlock()
	return chain.tip.Hash()
}
