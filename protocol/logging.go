package protocol

import "github.com/op/go-logging"

// log is this package's module logger; see engine/logging.go for where
// the shared backend is configured.
var log = logging.MustGetLogger("protocol")
