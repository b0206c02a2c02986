//go:build !(unix || linux || darwin || freebsd || openbsd || netbsd)

package wordlist

import "os"

// bufferedFile is the OpenMapped fallback for platforms without a POSIX
// mmap (e.g. plain Windows builds): it reads the whole file into memory
// once instead of mapping it, exposing the identical ReadMapper surface.
type bufferedFile struct {
	MappedFile
}

func OpenMapped(path string) (ReadMapper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &bufferedFile{MappedFile{data: data}}, nil
}

func (b *bufferedFile) Close() error { return nil }
