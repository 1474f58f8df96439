package progress

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by KV.Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// KV is the persistent storage capability the progress store depends on:
// a synchronous string key-value store where every operation can fail.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryKV is an in-process KV used by tests and as the fallback when no
// durable backend is available. Nothing survives process exit.
type MemoryKV struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemoryKV creates an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

func (kv *MemoryKV) Get(key string) (string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.m[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (kv *MemoryKV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.m[key] = value
	return nil
}

func (kv *MemoryKV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.m, key)
	return nil
}

// ErrStorageUnavailable is returned by UnavailableKV for every write.
var ErrStorageUnavailable = errors.New("storage unavailable")

// UnavailableKV is the degraded-mode backend used when the durable store
// cannot be opened. Reads behave as an empty store and writes fail, so the
// application runs entirely in-session and the UI can surface the condition.
type UnavailableKV struct{}

func (UnavailableKV) Get(key string) (string, error) { return "", ErrNotFound }
func (UnavailableKV) Set(key, value string) error    { return ErrStorageUnavailable }
func (UnavailableKV) Delete(key string) error        { return ErrStorageUnavailable }
