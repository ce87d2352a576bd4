package types

import "errors"

// Config holds backend selection and parameters for Backend.Attach.
type Config struct {
	Backend   string `json:"backend" yaml:"backend"`
	DataDir   string `json:"data_dir" yaml:"data_dir"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// DefaultNamespace is the storage key used when none is configured.
const DefaultNamespace = "todos"

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrNamespaceEmpty = errors.New("namespace must not be empty")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
	BackendDiskv:  true,
	BackendFile:   true,
	BackendMemory: true,
}

// Backends returns the accepted backend names in a stable order.
func Backends() []string {
	return []string{BackendSQLite, BackendDiskv, BackendFile, BackendMemory}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Namespace == "" {
		return ErrNamespaceEmpty
	}
	return nil
}
