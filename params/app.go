package params

import (
	"os"
	"path/filepath"
)

// DatadirRoot is a per-user root directory for on-disk state. The CLI
// wrapper does not read it: the bolt-backed track store is opened only
// at the path given by --boltdb.
var DatadirRoot = func() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".trackfilter")
}()

// DefaultGZipCompressionLevel is used by catz when writing gzipped
// track fixtures.
const DefaultGZipCompressionLevel = 6
