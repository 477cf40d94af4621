package db

import (
	"fmt"
	"path/filepath"
)

const (
	BackendLevelDB = "leveldb"
	BackendBolt    = "bbolt"
	BackendMemory  = "memory"
)

// NewProvider opens the configured backend under dataDir
func NewProvider(backend, dataDir string) (DatabaseProvider, error) {
	switch backend {
	case BackendLevelDB, "":
		return NewLevelDBProvider(filepath.Join(dataDir, "state"))
	case BackendBolt:
		return NewBoltProvider(filepath.Join(dataDir, "state.db"))
	case BackendMemory:
		return NewMemoryProvider(), nil
	default:
		return nil, fmt.Errorf("unknown db backend %q", backend)
	}
}
