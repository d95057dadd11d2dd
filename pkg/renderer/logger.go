package renderer

import (
	"fmt"
	"io"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to a stream
type DefaultLogger struct {
	w io.Writer
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.w, format, args...)
}

// NewWriterLogger creates a logger writing to w
func NewWriterLogger(w io.Writer) core.Logger {
	return &DefaultLogger{w: w}
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}
