// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cybrota/wordbook/avltree"
)

// maxTokenBuffer bounds the scanner buffer; it leaves room for a
// MaxKeyLength token plus its delimiter.
const maxTokenBuffer = 2 * MaxKeyLength

var (
	// ErrOpen is wrapped by LoadFile when the dump cannot be opened.
	ErrOpen = errors.New("can't open file")
	// ErrMalformed is wrapped by Load when the source is not a valid dump.
	ErrMalformed = errors.New("malformed dump")
)

// Dump writes the word count followed by every key and value in ascending
// key order, all separated by single spaces and terminated by a newline:
//
//	3 apple 5 banana 3 cherry 9
func (d *Dictionary) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bar := newProgress(d.config.Progress, d.words.Len(), "saving")
	defer bar.finish()

	buf := strconv.AppendInt(nil, int64(d.words.Len()), 10)
	for key, value := range d.words.All() {
		buf = append(buf, ' ')
		buf = append(buf, key...)
		buf = append(buf, ' ')
		buf = strconv.AppendUint(buf, value, 10)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
		bar.add(1)
	}
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return err
	}
	return bw.Flush()
}

// Load replaces the contents of the dictionary with the dump read from r.
// Any whitespace separates tokens. Later duplicates of a key overwrite
// earlier ones. If the source is malformed the dictionary is left as it
// was and the error wraps ErrMalformed.
func (d *Dictionary) Load(r io.Reader) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxTokenBuffer)
	s.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if s.Scan() {
			return s.Text(), nil
		}
		if err := s.Err(); errors.Is(err, bufio.ErrTooLong) {
			return "", fmt.Errorf("%w: %s longer than %d bytes", ErrMalformed, what, MaxKeyLength)
		} else if err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: missing %s", ErrMalformed, what)
	}

	token, err := next("count")
	if err != nil {
		return err
	}
	count, err := strconv.ParseUint(token, 10, 63)
	if err != nil {
		return fmt.Errorf("%w: bad count %q", ErrMalformed, token)
	}

	words := avltree.New[string, uint64]()
	bar := newProgress(d.config.Progress, int(count), "loading")
	defer bar.finish()
	for i := uint64(0); i < count; i++ {
		key, err := next("key")
		if err != nil {
			return err
		}
		token, err := next("value")
		if err != nil {
			return err
		}
		value, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: bad value %q for %q", ErrMalformed, token, key)
		}
		key = d.normalise(key)
		if err := ValidateKey(key); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		words.Set(key, value)
		bar.add(1)
	}

	d.replace(words)
	return nil
}

// Save dumps the dictionary into the file at path, creating or truncating it.
func (d *Dictionary) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("can't create file: %w", err)
	}
	if err := d.Dump(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile replaces the contents of the dictionary with the dump stored at
// path.
func (d *Dictionary) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()
	return d.Load(f)
}
