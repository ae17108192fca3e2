// Package docio moves the document buffer to and from the filesystem.
//
// Reads are line oriented: every line read gets a "\n" appended, including
// the last one, so a file without a trailing newline gains one on Open.
package docio

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"strings"
)

// IOError is the single error kind returned by Open and Save.
type IOError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

// Error returns the underlying error text; callers prefix their own context.
func (e *IOError) Error() string { return e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// IsIOError reports whether err is (or wraps) an *IOError.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// Store is the file access used by the editor commands.
type Store interface {
	Open(path string) (string, error)
	Save(path, text string) error
}

// FS implements Store on the local filesystem.
type FS struct{}

func (FS) Open(path string) (string, error) { return Open(path) }
func (FS) Save(path, text string) error     { return Save(path, text) }

// Open reads the whole file at path and reassembles it line by line.
func Open(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	sc.Split(scanLines)
	var b strings.Builder
	for sc.Scan() {
		b.Write(sc.Bytes())
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return "", &IOError{Op: "open", Path: path, Err: err}
	}
	return b.String(), nil
}

// Save writes text to path verbatim, creating or truncating the file.
func Save(path, text string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "save", Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(text); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// maxLine caps a single line at 1 GiB; files are assumed small.
const maxLine = 1 << 30

// scanLines splits on "\n", "\r" and "\r\n". Unlike bufio.ScanLines a lone
// "\r" also ends a line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// "\r": need one more byte to know whether it is "\r\n".
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
