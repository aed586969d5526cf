package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Encode returns the selector indices in persisted order.
func (s *Settings) Encode() []int {
	out := make([]int, keyCount)
	copy(out, s.index[:])
	return out
}

// Decode builds settings from persisted indices. A wrong count or any index
// out of range resets everything to the defaults; the returned settings are
// always usable and the error only reports what was discarded.
func Decode(indices []int) (*Settings, error) {
	s := New()
	if len(indices) != int(keyCount) {
		return s, fmt.Errorf("%w: got %d values, want %d", ErrMalformed, len(indices), keyCount)
	}
	for i, idx := range indices {
		if err := s.Set(Key(i), idx); err != nil {
			s.ResetDefaults()
			return s, err
		}
	}
	return s, nil
}

// Read decodes settings written one integer per line. Blank lines are skipped.
func Read(r io.Reader) (*Settings, error) {
	var indices []int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return New(), fmt.Errorf("%w: line %d: %q", ErrMalformed, line, text)
		}
		indices = append(indices, v)
	}
	if err := scanner.Err(); err != nil {
		return New(), fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Decode(indices)
}

// Write encodes the settings one integer per line.
func (s *Settings) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, v := range s.Encode() {
		if _, err := fmt.Fprintln(bw, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load reads settings from path. A missing or undecodable file is replaced by
// a freshly written default file; the returned settings are usable either way
// and the error describes what happened.
func Load(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		s := New()
		if !errors.Is(err, fs.ErrNotExist) {
			return s, err
		}
		return s, s.Save(path)
	}
	s, decodeErr := Read(f)
	f.Close()

	if decodeErr != nil {
		if err := s.Save(path); err != nil {
			return s, errors.Join(decodeErr, err)
		}
	}
	return s, decodeErr
}

// Save writes the settings to path, replacing any existing file.
func (s *Settings) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
