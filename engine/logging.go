package engine

import "github.com/op/go-logging"

// log is this package's module logger. The backend (format, level,
// output) is configured once by cmd/shatranj's main; engine only ever
// acquires the named logger, matching the multi-package
// logging.MustGetLogger("...") convention FrankyGo uses throughout its
// own package tree.
var log = logging.MustGetLogger("engine")
