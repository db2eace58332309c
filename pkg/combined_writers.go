package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans a single write out to all of its writers,
// e.g. the log file and stdout.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer{}, writers...),
	}
}

// Write keeps going when one of the writers fails, and reports the sum of
// successfully written bytes together with all the errors combined.
func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
