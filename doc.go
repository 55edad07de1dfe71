// Package stdinout opens a named file when a filename argument is given,
// and falls back to the process's standard input or output otherwise.
//
// This pattern shows up in nearly every UNIX-style command-line tool:
// `tool FILE` reads FILE, `tool` alone reads standard input, and an
// optional second argument names the output file. stdinout wraps the
// pattern behind two small selectors so callers never branch on which
// variant they hold.
//
// # Reading
//
// An empty path (or "-") selects standard input:
//
//	in := stdinout.OrStdin(flag.Arg(0))
//	r, err := in.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	for {
//	    line, err := r.ReadString('\n')
//	    // ...
//	}
//
// # Writing
//
// Symmetrically for output:
//
//	out := stdinout.OrStdout(flag.Arg(1))
//	w, err := out.Create()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	fmt.Fprintln(w, "...")
//
// # Ownership
//
// A handle backed by a file owns it and releases it on Close. A handle
// backed by a standard stream does not own it: Close is a no-op, so a
// deferred Close is always safe regardless of variant.
//
// # Errors
//
// Open failures are returned as the platform's *os.PathError, unchanged.
// There is no retry and no fallback: a tool asked to read a file that does
// not exist must fail, not silently read standard input instead.
package stdinout
