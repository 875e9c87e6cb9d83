package cgminfo

import (
	"log/slog"

	"github.com/tsawler/cgminfo/format"
)

// ReadOptions holds configuration for decoding a metafile.
type ReadOptions struct {
	encoding format.Encoding
	logger   *slog.Logger // nil discards log output
}

// defaultOptions returns the default read options.
func defaultOptions() ReadOptions {
	return ReadOptions{
		encoding: format.Unknown,
		logger:   nil,
	}
}

// clone creates a copy of ReadOptions.
func (o ReadOptions) clone() ReadOptions {
	return ReadOptions{
		encoding: o.encoding,
		logger:   o.logger,
	}
}
