// Package buffer holds the file being edited: its bytes as last read or
// written, and a hash of the on-disk contents to detect outside changes.
package buffer

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrNoFilename = errors.New("no filename set")

type Buffer struct {
	filename     string
	data         []byte
	originalHash string
	modified     bool
}

func Open(filename string) (*Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &Buffer{
		filename:     filename,
		data:         data,
		originalHash: hashOf(data),
	}, nil
}

func hashOf(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (b *Buffer) Filename() string {
	return b.filename
}

func (b *Buffer) IsModified() bool {
	return b.modified
}

// MarkModified records that the edited text no longer matches Data.
func (b *Buffer) MarkModified() {
	b.modified = true
}

func (b *Buffer) Size() int64 {
	return int64(len(b.data))
}

func (b *Buffer) Data() []byte {
	return b.data
}

func (b *Buffer) HasChangedOnDisk() (bool, error) {
	if b.filename == "" {
		return false, nil
	}

	f, err := os.Open(b.filename)
	if err != nil {
		return false, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return false, err
	}

	return hashOf(data) != b.originalHash, nil
}

// Save writes data to the file and makes it the buffer's contents.
func (b *Buffer) Save(data []byte) error {
	if b.filename == "" {
		return ErrNoFilename
	}

	if err := os.WriteFile(b.filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", b.filename, err)
	}

	b.data = data
	b.originalHash = hashOf(data)
	b.modified = false
	return nil
}
