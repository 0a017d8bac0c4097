// Package loader reads LC-3 object-file images into word slices ready for
// the emulator's memory.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/lc3sim/emu"
)

// Image is a loaded LC-3 object file: an origin address and the program
// words to be placed starting there.
type Image struct {
	// Origin is the address at which Words[0] belongs.
	Origin uint16
	// Words are the program words, in the order they appear in the file.
	Words []uint16
}

// Load reads an LC-3 object file. The first word is the big-endian origin
// address; every subsequent word is placed at consecutive addresses
// starting there. A short image (fewer words than would fill memory from
// origin) is accepted as-is. Words read past 0x10000-origin are rejected.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer func() { _ = f.Close() }()

	origin, err := readWord(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read origin: %w", err)
	}

	maxWords := emu.MemSize - int(origin)

	var words []uint16
	for {
		word, err := readWord(f)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read image file: %w", err)
		}
		if len(words) >= maxWords {
			return nil, fmt.Errorf("image at origin 0x%04X overruns memory", origin)
		}
		words = append(words, word)
	}

	return &Image{Origin: origin, Words: words}, nil
}

// readWord reads one big-endian 16-bit word, byte-swapping it into host
// order via emu.Swap16. It reports io.EOF only when zero bytes were read;
// a single trailing byte is a truncated file.
func readWord(r io.Reader) (uint16, error) {
	var buf [2]byte
	n, err := io.ReadFull(r, buf[:])
	if n == 0 && err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, fmt.Errorf("truncated word: %w", err)
	}

	raw := uint16(buf[0]) | uint16(buf[1])<<8
	return emu.Swap16(raw), nil
}
