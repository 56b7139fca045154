// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cpuminer implements CPU based proof of work mining on blakecoin
// block headers.  It consists of a speed monitor and a controller for worker
// goroutines which fetch header templates and grind their nonce range.
package cpuminer

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/blakecoin-community/blakecoind/crypto/blake256"
	"github.com/blakecoin-community/blakecoind/node/chaindata"
	"github.com/blakecoin-community/blakecoind/types/chaincfg"
	"github.com/blakecoin-community/blakecoind/types/chainhash"
	"github.com/blakecoin-community/blakecoind/types/pow"
	"github.com/blakecoin-community/blakecoind/types/wire"
)

const (
	// maxNonce is the maximum value a nonce can be in a block header.
	maxNonce = ^uint32(0) // 2^32 - 1

	// hpsUpdateSecs is the number of seconds to wait in between each
	// update to the hashes per second monitor.
	hpsUpdateSecs = 10

	// hashUpdateSecs is the number of seconds each worker waits in between
	// notifying the speed monitor with how many hashes have been completed
	// while they are actively searching for a solution.  This is done to
	// reduce the amount of syncs between the workers that must be done to
	// keep track of the hashes per second.
	hashUpdateSecs = 15
)

// defaultNumWorkers is the default number of workers to use for mining and is
// based on the number of processor cores.  This helps ensure the system stays
// reasonably responsive under heavy load.
var defaultNumWorkers = uint32(runtime.NumCPU())

// Config is a descriptor containing the cpu miner configuration.
type Config struct {
	// ChainParams identifies which chain parameters the cpu miner is
	// associated with.
	ChainParams *chaincfg.Params

	// NextHeaderTemplate returns the header the miner should attempt to
	// solve next.  The returned header must carry the previous block hash,
	// merkle root, timestamp and difficulty bits; the miner only touches
	// the nonce.
	NextHeaderTemplate func() (*wire.BlockHeader, error)

	// SubmitHeader defines the function to call with any solved headers.
	// It typically must run the solved header through the same set of
	// rules and handling as any other header coming from the network.
	SubmitHeader func(*wire.BlockHeader) error

	// BestHeaderHash returns the hash of the current chain tip.  It is
	// used to detect that a template became stale while being solved.
	BestHeaderHash func() chainhash.Hash

	// NumWorkers is the number of worker goroutines to launch.  Zero
	// selects one worker per processor core.
	NumWorkers uint32
}

// CPUMiner provides facilities for solving block headers (mining) using the
// CPU in a concurrency-safe manner.  It consists of two main goroutines -- a
// speed monitor and a controller for worker goroutines which fetch and solve
// header templates.  The number of goroutines can be set via the
// SetNumWorkers function, but the default is based on the number of processor
// cores in the system which is typically sufficient.
type CPUMiner struct {
	sync.Mutex
	cfg               Config
	metrics           *Metrics
	numWorkers        uint32
	started           bool
	discreteMining    bool
	submitLock        sync.Mutex
	wg                sync.WaitGroup
	workerWg          sync.WaitGroup
	updateNumWorkers  chan struct{}
	queryHashesPerSec chan float64
	updateHashes      chan uint64
	speedMonitorQuit  chan struct{}
	quit              chan struct{}
	log               zerolog.Logger
}

// speedMonitor handles tracking the number of hashes per second the mining
// process is performing.  It must be run as a goroutine.
func (miner *CPUMiner) speedMonitor() {
	miner.log.Debug().Msg("CPU miner speed monitor started")

	var hashesPerSec float64
	var totalHashes uint64
	ticker := time.NewTicker(time.Second * hpsUpdateSecs)
	defer ticker.Stop()

out:
	for {
		select {
		// Periodic updates from the workers with how many hashes they
		// have performed.
		case numHashes := <-miner.updateHashes:
			totalHashes += numHashes
			miner.metrics.HashesCompleted.Add(float64(numHashes))

		// Time to update the hashes per second.
		case <-ticker.C:
			curHashesPerSec := float64(totalHashes) / hpsUpdateSecs
			if hashesPerSec == 0 {
				hashesPerSec = curHashesPerSec
			}
			hashesPerSec = (hashesPerSec + curHashesPerSec) / 2
			totalHashes = 0
			miner.metrics.HashesPerSecond.Set(hashesPerSec)
			if hashesPerSec != 0 {
				miner.log.Debug().
					Str("speed", fmt.Sprintf("%6.0f kilohashes/s", hashesPerSec/1000)).
					Msg("hash speed")
			}

		// Request for the number of hashes per second.
		case miner.queryHashesPerSec <- hashesPerSec:
			// Nothing to do.

		case <-miner.speedMonitorQuit:
			break out
		}
	}

	miner.wg.Done()
	miner.log.Debug().Msg("CPU miner speed monitor done")
}

// submitHeader submits the passed solved header after ensuring it is not
// stale.
func (miner *CPUMiner) submitHeader(header *wire.BlockHeader) bool {
	miner.submitLock.Lock()
	defer miner.submitLock.Unlock()

	// Ensure the header is not stale since a new block could have shown up
	// while the solution was being found.  Typically that condition is
	// detected and all work on the stale template is halted to start work
	// on a new one, but the check only happens periodically, so it is
	// possible a solution was found and submitted in between.
	if best := miner.cfg.BestHeaderHash(); !header.PrevBlock.IsEqual(&best) {
		miner.log.Debug().
			Stringer("prevBlock", &header.PrevBlock).
			Msg("solved header submitted via CPU miner is stale")
		return false
	}

	if err := miner.cfg.SubmitHeader(header); err != nil {
		// Anything other than a rule violation is an unexpected error,
		// so log that error as an internal error.
		var rErr chaindata.RuleError
		if !errors.As(err, &rErr) {
			miner.log.Error().Err(err).
				Msg("unexpected error while processing header submitted via CPU miner")
			return false
		}

		miner.log.Debug().Err(err).Msg("header submitted via CPU miner rejected")
		return false
	}

	hash := header.BlockHash()
	miner.metrics.HeadersSolved.Inc()
	miner.log.Info().
		Stringer("hash", &hash).
		Uint32("nonce", header.Nonce).
		Msg("header submitted via CPU miner accepted")
	return true
}

// solveHeader attempts to find a nonce which makes the passed header hash to
// a value less than the target difficulty.  The passed header is modified
// during this process, so when the function returns true the header is ready
// for submission.
//
// This function will return early with false when a new block shows up on the
// chain while solving, making the template stale, or when the quit channel
// closes.
func (miner *CPUMiner) solveHeader(header *wire.BlockHeader, ticker *time.Ticker,
	quit chan struct{}) bool {

	targetDifficulty := pow.CompactToBig(header.Bits)

	// Serialize the header once and patch the nonce bytes in place on
	// each attempt: the nonce is the trailing 4 bytes of the wire format.
	var buf [wire.BlockHeaderLen]byte
	w := bytes.NewBuffer(buf[:0])
	if err := header.Serialize(w); err != nil {
		miner.log.Error().Err(err).Msg("failed to serialize header template")
		return false
	}

	// The Blake-256 state is reused across attempts to avoid an
	// allocation per hash.
	hasher := blake256.New()
	var hash chainhash.Hash
	hashesCompleted := uint64(0)

	for i := uint32(0); ; i++ {
		select {
		case <-quit:
			return false

		case <-ticker.C:
			miner.updateHashes <- hashesCompleted
			hashesCompleted = 0

			// The current template is stale if the best block has
			// changed.
			if best := miner.cfg.BestHeaderHash(); !header.PrevBlock.IsEqual(&best) {
				return false
			}

		default:
			// Non-blocking select to fall through
		}

		binary.LittleEndian.PutUint32(buf[76:80], i)
		hasher.Reset()
		hasher.Write(buf[:])
		hasher.Sum(hash[:0])
		hashesCompleted++

		// The header is solved when its hash is less than the target
		// difficulty.  Yay!
		if pow.HashToBig(&hash).Cmp(targetDifficulty) <= 0 {
			miner.updateHashes <- hashesCompleted
			header.Nonce = i
			return true
		}

		if i == maxNonce {
			return false
		}
	}
}

// generateHeaders is a worker that is controlled by the
// miningWorkerController.  It is self contained in that it fetches header
// templates and attempts to solve them while detecting when it is performing
// stale work and reacting accordingly by fetching a new template.  When a
// header is solved, it is submitted.
//
// It must be run as a goroutine.
func (miner *CPUMiner) generateHeaders(quit chan struct{}) {
	// Start a ticker which is used to signal checks for stale work and
	// updates to the speed monitor.
	ticker := time.NewTicker(time.Second * hashUpdateSecs)
	defer ticker.Stop()

out:
	for {
		// Quit when the miner is stopped.
		select {
		case <-quit:
			break out
		default:
			// Non-blocking select to fall through
		}

		miner.submitLock.Lock()
		template, err := miner.cfg.NextHeaderTemplate()
		miner.submitLock.Unlock()
		if err != nil {
			miner.log.Error().Err(err).Msg("failed to fetch header template")
			time.Sleep(time.Second)
			continue
		}

		// Attempt to solve the header.  The function will exit early
		// with false when conditions that trigger a stale template
		// occur, so a new template can be fetched.  When the return is
		// true a solution was found, so submit the solved header.
		if miner.solveHeader(template, ticker, quit) {
			miner.submitHeader(template)
		}
	}

	miner.workerWg.Done()
	miner.log.Debug().Msg("generate headers worker done")
}

// miningWorkerController launches the worker goroutines that are used to
// fetch header templates and solve them.  It also provides the ability to
// dynamically adjust the number of running worker goroutines.
//
// It must be run as a goroutine.
func (miner *CPUMiner) miningWorkerController() {
	// launchWorkers groups common code to launch a specified number of
	// workers for solving headers.
	var runningWorkers []chan struct{}
	launchWorkers := func(numWorkers uint32) {
		for i := uint32(0); i < numWorkers; i++ {
			quit := make(chan struct{})
			runningWorkers = append(runningWorkers, quit)

			miner.workerWg.Add(1)
			go miner.generateHeaders(quit)
		}
	}

	// Launch the current number of workers by default.
	runningWorkers = make([]chan struct{}, 0, miner.numWorkers)
	launchWorkers(miner.numWorkers)

out:
	for {
		select {
		// Update the number of running workers.
		case <-miner.updateNumWorkers:
			// No change.
			numRunning := uint32(len(runningWorkers))
			if miner.numWorkers == numRunning {
				continue
			}

			// Add new workers.
			if miner.numWorkers > numRunning {
				launchWorkers(miner.numWorkers - numRunning)
				continue
			}

			// Signal the most recently created goroutines to exit.
			for i := numRunning - 1; i >= miner.numWorkers; i-- {
				close(runningWorkers[i])
				runningWorkers[i] = nil
				runningWorkers = runningWorkers[:i]
			}

		case <-miner.quit:
			for _, quit := range runningWorkers {
				close(quit)
			}
			break out
		}
	}

	// Wait until all workers shut down to stop the speed monitor since
	// they rely on being able to send updates to it.
	miner.workerWg.Wait()
	close(miner.speedMonitorQuit)
	miner.wg.Done()
}

// Run starts the miner and blocks until the passed context is cancelled.
func (miner *CPUMiner) Run(ctx context.Context) {
	miner.Start()
	<-ctx.Done()
	miner.Stop()
}

// Start begins the CPU mining process as well as the speed monitor used to
// track hashing metrics.  Calling this function when the CPU miner has
// already been started will have no effect.
//
// This function is safe for concurrent access.
func (miner *CPUMiner) Start() {
	miner.Lock()
	defer miner.Unlock()

	// Nothing to do if the miner is already running or if running in
	// discrete mode (using GenerateNHeaders).
	if miner.started || miner.discreteMining {
		return
	}

	miner.quit = make(chan struct{})
	miner.speedMonitorQuit = make(chan struct{})
	miner.wg.Add(2)
	go miner.speedMonitor()
	go miner.miningWorkerController()

	miner.started = true
	miner.log.Info().Msg("CPU miner started")
}

// Stop gracefully stops the mining process by signalling all workers, and the
// speed monitor to quit.  Calling this function when the CPU miner has not
// already been started will have no effect.
//
// This function is safe for concurrent access.
func (miner *CPUMiner) Stop() {
	miner.Lock()
	defer miner.Unlock()

	// Nothing to do if the miner is not currently running or if running in
	// discrete mode (using GenerateNHeaders).
	if !miner.started || miner.discreteMining {
		return
	}

	close(miner.quit)
	miner.wg.Wait()
	miner.started = false
	miner.log.Info().Msg("CPU miner stopped")
}

// IsMining returns whether or not the CPU miner has been started and is
// therefore currently mining.
//
// This function is safe for concurrent access.
func (miner *CPUMiner) IsMining() bool {
	miner.Lock()
	defer miner.Unlock()

	return miner.started
}

// HashesPerSecond returns the number of hashes per second the mining process
// is performing.  0 is returned if the miner is not currently running.
//
// This function is safe for concurrent access.
func (miner *CPUMiner) HashesPerSecond() float64 {
	miner.Lock()
	defer miner.Unlock()

	// Nothing to do if the miner is not currently running.
	if !miner.started {
		return 0
	}

	return <-miner.queryHashesPerSec
}

// SetNumWorkers sets the number of workers to create which solve headers.
// Any negative values will cause a default number of workers to be used which
// is based on the number of processor cores in the system.  A value of 0 will
// cause all CPU mining to be stopped.
//
// This function is safe for concurrent access.
func (miner *CPUMiner) SetNumWorkers(numWorkers int32) {
	if numWorkers == 0 {
		miner.Stop()
	}

	// Don't lock until after the first check since Stop does its own
	// locking.
	miner.Lock()
	defer miner.Unlock()

	// Use default if provided value is negative.
	if numWorkers < 0 {
		miner.numWorkers = defaultNumWorkers
	} else {
		miner.numWorkers = uint32(numWorkers)
	}

	// When the miner is already running, notify the controller about the
	// the change.
	if miner.started {
		miner.updateNumWorkers <- struct{}{}
	}
}

// NumWorkers returns the number of workers which are running to solve
// headers.
//
// This function is safe for concurrent access.
func (miner *CPUMiner) NumWorkers() int32 {
	miner.Lock()
	defer miner.Unlock()

	return int32(miner.numWorkers)
}

// GenerateNHeaders mines the requested number of headers synchronously with a
// single worker and returns their hashes.  It is mainly useful on regression
// test networks where the difficulty is trivial.
func (miner *CPUMiner) GenerateNHeaders(n uint32) ([]*chainhash.Hash, error) {
	miner.Lock()

	// Respond with an error if the miner is already mining.
	if miner.started || miner.discreteMining {
		miner.Unlock()
		return nil, errors.New("miner is already running")
	}

	miner.started = true
	miner.discreteMining = true

	miner.speedMonitorQuit = make(chan struct{})
	miner.wg.Add(1)
	go miner.speedMonitor()

	miner.Unlock()

	miner.log.Debug().Uint32("n", n).Msg("generating headers")

	i := uint32(0)
	headerHashes := make([]*chainhash.Hash, n)

	// Start a ticker which is used to signal checks for stale work and
	// updates to the speed monitor.
	ticker := time.NewTicker(time.Second * hashUpdateSecs)
	defer ticker.Stop()

	for {
		miner.submitLock.Lock()
		template, err := miner.cfg.NextHeaderTemplate()
		miner.submitLock.Unlock()
		if err != nil {
			miner.log.Error().Err(err).Msg("failed to fetch header template")
			continue
		}

		if miner.solveHeader(template, ticker, nil) && miner.submitHeader(template) {
			hash := template.BlockHash()
			headerHashes[i] = &hash
			i++
			if i == n {
				miner.log.Debug().Uint32("n", i).Msg("generated headers")
				miner.Lock()
				close(miner.speedMonitorQuit)
				miner.wg.Wait()
				miner.started = false
				miner.discreteMining = false
				miner.Unlock()
				return headerHashes, nil
			}
		}
	}
}

// New returns a new instance of a CPU miner for the provided configuration.
// Use Start to begin the mining process.  See the documentation for CPUMiner
// type for more details.
func New(cfg *Config, log zerolog.Logger) *CPUMiner {
	numWorkers := cfg.NumWorkers
	if numWorkers == 0 {
		numWorkers = defaultNumWorkers
	}
	return &CPUMiner{
		log:               log,
		cfg:               *cfg,
		metrics:           newMetrics(),
		numWorkers:        numWorkers,
		updateNumWorkers:  make(chan struct{}),
		queryHashesPerSec: make(chan float64),
		updateHashes:      make(chan uint64),
	}
}
