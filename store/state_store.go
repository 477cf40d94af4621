package store

import (
	"fmt"
	"sync"

	"github.com/koinledger/koin/db"
	"github.com/koinledger/koin/logx"
)

// ObjectWrite is one pending write against a state space.
type ObjectWrite struct {
	Space Space
	Key   []byte
	Value []byte
}

// StateStore exposes the state database as objects keyed by (space, sub-key).
// Absent objects read as nil; writes for a single ledger operation commit
// through one batch so no partial state is ever observable.
type StateStore struct {
	mu         sync.RWMutex
	dbProvider db.DatabaseProvider
}

func NewStateStore(dbProvider db.DatabaseProvider) (*StateStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	return &StateStore{dbProvider: dbProvider}, nil
}

// GetObject returns the object stored under (space, key), nil if absent
func (ss *StateStore) GetObject(space Space, key []byte) ([]byte, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	dbKey, err := objectKey(space, key)
	if err != nil {
		return nil, err
	}
	data, err := ss.dbProvider.Get(dbKey)
	if err != nil {
		return nil, fmt.Errorf("could not get object from db: %w", err)
	}
	return data, nil
}

// PutObject stores a single object under (space, key)
func (ss *StateStore) PutObject(space Space, key, value []byte) error {
	return ss.PutObjects([]ObjectWrite{{Space: space, Key: key, Value: value}})
}

// PutObjects commits all writes atomically through a provider batch
func (ss *StateStore) PutObjects(writes []ObjectWrite) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	batch := ss.dbProvider.Batch()
	defer batch.Close()

	for _, w := range writes {
		dbKey, err := objectKey(w.Space, w.Key)
		if err != nil {
			return err
		}
		batch.Put(dbKey, w.Value)
	}

	if err := batch.Write(); err != nil {
		return fmt.Errorf("failed to write state batch: %w", err)
	}
	return nil
}

func (ss *StateStore) MustClose() {
	if err := ss.dbProvider.Close(); err != nil {
		logx.Error("STATE_STORE", "Failed to close db provider:", err.Error())
	}
}

func objectKey(space Space, key []byte) ([]byte, error) {
	prefix, ok := spacePrefix(space)
	if !ok {
		return nil, fmt.Errorf("unknown state space %d", space)
	}
	return append([]byte(prefix), key...), nil
}
