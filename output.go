package stdinout

import (
	"io"
	"os"
)

// Output selects between a named file and the process's standard output.
// The zero value selects standard output.
//
// Output is a description of the sink, not an open resource: Create
// acquires the underlying stream.
type Output struct {
	path string
}

// OrStdout returns an Output backed by the file at path. An empty path
// selects standard output instead, as does "-" unless WithLiteralDash is
// given.
func OrStdout(path string, opts ...Option) Output {
	o := applyOptions(opts)
	if path == stdMarker && !o.literalDash {
		path = ""
	}
	return Output{path: path}
}

// String reports the selected sink: "-" for standard output, else the path.
func (out Output) String() string {
	if out.path == "" {
		return stdMarker
	}
	return out.path
}

// Create acquires the sink and returns a writer over it.
//
// For the file variant the file is created here with standard file-write
// semantics: an existing file is truncated, a missing one is created with
// mode 0666 before umask. The returned Writer owns the file and the
// caller must Close it. An open failure is returned unchanged; there is
// no fallback to standard output when a path was given.
func (out Output) Create() (*Writer, error) {
	if out.path == "" {
		return &Writer{Writer: os.Stdout}, nil
	}
	f, err := os.OpenFile(out.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return nil, err
	}
	return &Writer{Writer: f, file: f}, nil
}

// Writer is a writable stream handle with a uniform write contract across
// both variants. Writes are unbuffered: bytes go straight to the
// underlying stream.
type Writer struct {
	io.Writer
	file *os.File // nil for the standard output variant
}

// Close releases the underlying file. On the standard output variant it
// is a no-op: the process stream outlives the handle and is never closed
// here.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	return w.file.Close()
}
