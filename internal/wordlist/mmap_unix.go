//go:build unix || linux || darwin || freebsd || openbsd || netbsd

package wordlist

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// unixMappedFile keeps the backing *os.File alive alongside the mapping,
// the same pairing mjm918-tur's MmapFile uses (pkg/pager/mmap_unix.go).
type unixMappedFile struct {
	MappedFile
	file *os.File
}

// OpenMapped memory-maps path read-only. It refuses an empty file, since
// mmap(2) rejects a zero-length mapping.
func OpenMapped(path string) (ReadMapper, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.Size() == 0 {
		f.Close()
		return nil, errors.New("wordlist: cannot mmap an empty file")
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(stat.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &unixMappedFile{MappedFile: MappedFile{data: data}, file: f}, nil
}

func (m *unixMappedFile) Close() error {
	var firstErr error
	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil && firstErr == nil {
			firstErr = err
		}
		m.data = nil
	}
	if err := m.file.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
