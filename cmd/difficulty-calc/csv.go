// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/gocarina/gocsv"
)

// headerRecord is one row of a replay file: the header's height, unix
// timestamp and compact difficulty as hex.
type headerRecord struct {
	Height int32  `csv:"height"`
	Time   int64  `csv:"time"`
	Bits   string `csv:"bits"`
}

type csvStorage struct {
	path string
	file *os.File
}

func newCSVStorage(path string) *csvStorage {
	return &csvStorage{path: path}
}

func (storage *csvStorage) open(readOnly bool) error {
	mode := os.O_RDWR | os.O_CREATE
	if readOnly {
		mode = os.O_RDONLY
	}

	file, err := os.OpenFile(storage.path, mode, 0644)
	storage.file = file
	return err
}

func (storage *csvStorage) Close() {
	if storage.file != nil {
		_ = storage.file.Close()
	}
}

// FetchHeaders loads all records from the file.
func (storage *csvStorage) FetchHeaders() ([]headerRecord, error) {
	if err := storage.open(true); err != nil {
		return nil, err
	}
	defer storage.Close()

	records := make([]headerRecord, 0)
	err := gocsv.UnmarshalFile(storage.file, &records)
	return records, err
}

// SaveHeaders writes records out, mainly so a replay file can be produced
// from another tool or a test.
func (storage *csvStorage) SaveHeaders(records []headerRecord) error {
	if err := storage.open(false); err != nil {
		return err
	}
	defer storage.Close()

	if err := storage.file.Truncate(0); err != nil {
		return err
	}
	return gocsv.MarshalFile(records, storage.file)
}
