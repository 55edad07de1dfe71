package stdinout

import (
	"bufio"
	"os"
)

// Input selects between a named file and the process's standard input.
// The zero value selects standard input.
//
// Input is a description of the source, not an open resource: Open
// acquires the underlying stream.
type Input struct {
	path string
}

// OrStdin returns an Input backed by the file at path. An empty path
// selects standard input instead, as does "-" unless WithLiteralDash is
// given.
func OrStdin(path string, opts ...Option) Input {
	o := applyOptions(opts)
	if path == stdMarker && !o.literalDash {
		path = ""
	}
	return Input{path: path}
}

// String reports the selected source: "-" for standard input, else the path.
func (in Input) String() string {
	if in.path == "" {
		return stdMarker
	}
	return in.path
}

// Open acquires the source and returns a buffered reader over it.
//
// For the file variant the file is opened here and owned by the returned
// Reader; the caller must Close it. An open failure is returned to the
// caller unchanged. There is no fallback to standard input when a path
// was given.
func (in Input) Open() (*Reader, error) {
	if in.path == "" {
		return &Reader{Reader: bufio.NewReader(os.Stdin)}, nil
	}
	f, err := os.Open(in.path)
	if err != nil {
		return nil, err
	}
	return &Reader{Reader: bufio.NewReader(f), file: f}, nil
}

// Reader is a readable stream handle. It embeds a *bufio.Reader, so byte-
// and line-oriented reads behave identically whether the handle is backed
// by a file or by standard input.
type Reader struct {
	*bufio.Reader
	file *os.File // nil for the standard input variant
}

// Close releases the underlying file. On the standard input variant it is
// a no-op: the process stream outlives the handle and is never closed here.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}
