package huffman

import (
	"io"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")

func init() {
	SetLogBackend(nil)
}

// SetLogBackend sends the package's debug records to backend.  By default,
// or after SetLogBackend(nil), the package logs nothing.  It is not safe to
// call concurrently with the rest of the package.
func SetLogBackend(backend logging.LeveledBackend) {
	if backend == nil {
		quiet := logging.AddModuleLevel(logging.NewLogBackend(io.Discard, "", 0))
		quiet.SetLevel(logging.CRITICAL, "")
		backend = quiet
	}
	log.SetBackend(backend)
}
