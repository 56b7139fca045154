// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "fmt"

// BlakecoinNet represents which blakecoin network a message belongs to.
type BlakecoinNet uint32

// Constants used to indicate the message blakecoin network.  They can also be
// used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main blakecoin network.
	MainNet BlakecoinNet = 0xd4b1c0fe

	// TestNet represents the test network.
	TestNet BlakecoinNet = 0xb1c07e57

	// SimNet represents the regression/simulation test network.
	SimNet BlakecoinNet = 0xb1c05e9d
)

// bnStrings is a map of blakecoin networks back to their constant names for
// pretty printing.
var bnStrings = map[BlakecoinNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	SimNet:  "SimNet",
}

// String returns the BlakecoinNet in human-readable form.
func (n BlakecoinNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown BlakecoinNet (%d)", uint32(n))
}
