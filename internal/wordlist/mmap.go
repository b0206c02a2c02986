// Package wordlist loads newline-delimited key material for cmd/artbench,
// optionally via a read-only memory mapping instead of a buffered read.
package wordlist

import "os"

// MappedFile is a read-only view over a file's contents, produced either
// by mmap(2) (mmap_unix.go) or by a plain buffered read (mmap_other.go
// on platforms without a POSIX mmap).
type MappedFile struct {
	data []byte
}

// Bytes returns the file's full contents. The returned slice must not be
// modified or retained past a call to Close.
func (m *MappedFile) Bytes() []byte { return m.data }

// ReadMapper is satisfied by both the mmap_unix.go and mmap_other.go
// OpenMapped implementations, so callers don't need a build tag of
// their own to consume either one.
type ReadMapper interface {
	Bytes() []byte
	Close() error
}

type plainFile struct {
	MappedFile
}

func (p *plainFile) Close() error { return nil }

// openBuffered reads path in full without mapping it, for callers that
// did not ask for -mmap.
func openBuffered(path string) (ReadMapper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &plainFile{MappedFile{data: data}}, nil
}

