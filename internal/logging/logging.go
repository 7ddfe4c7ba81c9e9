// Package logging configures the process-wide standard logger. Grounded on
// the teacher's InitLogging (logging.go), pulled into its own package since
// this module has no HTTP server to colocate it with.
package logging

import (
	"log"
	"os"
)

// Init sets the standard logger's destination and timestamp format. Called
// once at CLI startup before anything else logs.
func Init() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
