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

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/bitmark-inc/logger"
	"github.com/cybrota/wordbook/dictionary"
)

// Command words
const (
	cmdAdd     = "+"
	cmdRemove  = "-"
	cmdGeneral = "!"
	opSave     = "Save"
	opLoad     = "Load"
)

// Replies
const (
	replyOK         = "OK"
	replyExist      = "Exist"
	replyNoSuchWord = "NoSuchWord"
)

// ErrInvalidCommand is wrapped by every error caused by a badly formed
// command.
var ErrInvalidCommand = errors.New("invalid command")

type commandError struct {
	message string
	end     bool // input ran out in the middle of the command
}

func (e *commandError) Error() string { return e.message }
func (e *commandError) Unwrap() error { return ErrInvalidCommand }

func invalidCommand(format string, args ...any) error {
	return &commandError{message: fmt.Sprintf(format, args...)}
}

// Session reads whitespace separated commands, applies them to a
// dictionary and writes one reply line per command.
type Session struct {
	dict *dictionary.Dictionary
	out  io.Writer
	log  *logger.L
}

func NewSession(dict *dictionary.Dictionary, out io.Writer, log *logger.L) *Session {
	return &Session{
		dict: dict,
		out:  out,
		log:  log,
	}
}

// maxWordLength is the longest word a session reads. Longer words are
// skipped and reported without ending the session.
const maxWordLength = dictionary.MaxKeyLength

var errWordTooLong = invalidCommand("word longer than %d bytes", maxWordLength)

// Run executes every command read from r. Command failures are reported
// on the output and do not stop the session; only read and write errors
// are returned.
func (s *Session) Run(r io.Reader) error {
	words := &wordSplitter{limit: maxWordLength}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 2*maxWordLength)
	scanner.Split(words.split)

	next := func() (string, error) {
		if !scanner.Scan() {
			return "", io.EOF
		}
		if words.skipped {
			words.skipped = false
			return "", errWordTooLong
		}
		return scanner.Text(), nil
	}
	if err := s.run(next); err != nil {
		return err
	}
	return scanner.Err()
}

// RunTokens executes commands from an already split token list.
func (s *Session) RunTokens(tokens []string) error {
	next := func() (string, error) {
		if len(tokens) == 0 {
			return "", io.EOF
		}
		t := tokens[0]
		tokens = tokens[1:]
		if len(t) > maxWordLength {
			return "", errWordTooLong
		}
		return t, nil
	}
	return s.run(next)
}

// wordSplitter is a bufio.SplitFunc source like bufio.ScanWords, except
// that a word longer than limit is discarded as it streams in and then
// yielded as one empty token with skipped set.
type wordSplitter struct {
	limit    int
	skipping bool
	skipped  bool
}

func (w *wordSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	if w.skipping {
		i := bytes.IndexFunc(data, unicode.IsSpace)
		if i < 0 && !atEOF {
			return len(data), nil, nil
		}
		if i < 0 {
			i = len(data)
		}
		w.skipping = false
		w.skipped = true
		return i, []byte{}, nil
	}

	advance, token, err := bufio.ScanWords(data, atEOF)
	if err != nil {
		return advance, token, err
	}
	if token != nil {
		if len(token) > w.limit {
			w.skipped = true
			return advance, []byte{}, nil
		}
		return advance, token, nil
	}
	// ScanWords wants more data for the word starting at advance
	if len(data)-advance > w.limit {
		w.skipping = true
		return len(data), nil, nil
	}
	return advance, nil, nil
}

func (s *Session) run(next func() (string, error)) error {
	for {
		cmd, err := next()
		if err == io.EOF {
			return nil
		}

		var reply string
		if err == nil {
			reply, err = s.execute(cmd, next)
		}
		if err != nil {
			s.log.Warnf("command %q failed: %s", cmd, err)
			reply = "ERROR: " + err.Error()
		}
		if _, werr := fmt.Fprintln(s.out, reply); werr != nil {
			return werr
		}

		var ce *commandError
		if errors.As(err, &ce) && ce.end {
			return nil
		}
	}
}

// execute runs a single command, pulling its arguments from next.
func (s *Session) execute(cmd string, next func() (string, error)) (string, error) {
	// args reads all n arguments even when one of them is too long, so the
	// following command starts at the right word
	args := func(n int) ([]string, error) {
		a := make([]string, n)
		var failed error
		for i := range a {
			word, err := next()
			if err == io.EOF {
				return nil, &commandError{
					message: fmt.Sprintf("unexpected end of input after %q", cmd),
					end:     true,
				}
			}
			if err != nil && failed == nil {
				failed = err
			}
			a[i] = word
		}
		return a, failed
	}

	switch cmd {
	case cmdAdd:
		a, err := args(2)
		if err != nil {
			return "", err
		}
		key, token := a[0], a[1]
		if err := dictionary.ValidateKey(key); err != nil {
			return "", err
		}
		value, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return "", invalidCommand("invalid value %q", token)
		}
		s.log.Debugf("add %q = %d", key, value)
		if !s.dict.AddWord(key, value) {
			return replyExist, nil
		}
		return replyOK, nil

	case cmdRemove:
		a, err := args(1)
		if err != nil {
			return "", err
		}
		key := a[0]
		s.log.Debugf("remove %q", key)
		if !s.dict.RemoveWord(key) {
			return replyNoSuchWord, nil
		}
		return replyOK, nil

	case cmdGeneral:
		// the path is consumed even when the operand is unknown
		a, err := args(2)
		if err != nil {
			return "", err
		}
		op, path := a[0], a[1]

		switch op {
		case opSave:
			s.log.Infof("save %d words to %q", s.dict.Size(), path)
			err = s.dict.Save(path)
		case opLoad:
			s.log.Infof("load from %q", path)
			err = s.dict.LoadFile(path)
		default:
			return "", invalidCommand("wrong general operand %q", op)
		}
		if err != nil {
			return "", err
		}
		return replyOK, nil

	default:
		s.log.Debugf("find %q", cmd)
		value, ok := s.dict.Find(cmd)
		if !ok {
			return replyNoSuchWord, nil
		}
		return "OK: " + strconv.FormatUint(value, 10), nil
	}
}
