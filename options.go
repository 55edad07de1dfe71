package stdinout

// stdMarker is the conventional command-line spelling for "use the
// standard stream".
const stdMarker = "-"

type options struct {
	literalDash bool
}

// Option configures how a path argument is interpreted.
type Option func(*options)

// WithLiteralDash treats a path of "-" as a literal filename instead of
// selecting the standard stream.
//
// By default "-" follows the common UNIX convention and selects standard
// input or standard output, the same as an absent path.
func WithLiteralDash() Option {
	return func(o *options) {
		o.literalDash = true
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
