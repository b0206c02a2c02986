package wordlist

import "bytes"

// Load reads path's contents (memory-mapped when useMmap is true) and
// splits it on '\n', trimming a trailing '\r' from each line and
// dropping empty lines. The returned slices alias the mapped/buffered
// data, so they are only valid until the returned closer is closed.
func Load(path string, useMmap bool) (lines [][]byte, closer ReadMapper, err error) {
	if useMmap {
		closer, err = OpenMapped(path)
	} else {
		closer, err = openBuffered(path)
	}
	if err != nil {
		return nil, nil, err
	}

	for _, line := range bytes.Split(closer.Bytes(), []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
	}
	return lines, closer, nil
}
