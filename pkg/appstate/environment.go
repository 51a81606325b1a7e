package appstate

import (
	"sync"

	"github.com/patrickmn/go-cache"
)

// Environment stands in for the browser: key-value persistence replaces
// localStorage, attributes replace document-element mutation. Stores only
// touch the environment through this interface, so they stay testable
// without one.
type Environment interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string)
	RemoveItem(key string)

	SetAttribute(name, value string)
	RemoveAttribute(name string)
}

// MemoryEnvironment is the test double: everything lives in maps.
type MemoryEnvironment struct {
	mu    sync.Mutex
	items map[string]string
	attrs map[string]string
}

func NewMemoryEnvironment() *MemoryEnvironment {
	return &MemoryEnvironment{
		items: make(map[string]string),
		attrs: make(map[string]string),
	}
}

func (e *MemoryEnvironment) GetItem(key string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	value, ok := e.items[key]
	return value, ok
}

func (e *MemoryEnvironment) SetItem(key, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items[key] = value
}

func (e *MemoryEnvironment) RemoveItem(key string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.items, key)
}

func (e *MemoryEnvironment) SetAttribute(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[name] = value
}

func (e *MemoryEnvironment) RemoveAttribute(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.attrs, name)
}

// Attribute reports the current value of a display attribute.
func (e *MemoryEnvironment) Attribute(name string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	value, ok := e.attrs[name]
	return value, ok
}

// FileEnvironment persists items through go-cache's gob snapshot so they
// survive a restart, the way localStorage survives a reload. Attributes are
// display state and stay in memory.
type FileEnvironment struct {
	mu    sync.Mutex
	path  string
	items *cache.Cache
	attrs map[string]string
}

func NewFileEnvironment(path string) *FileEnvironment {
	items := cache.New(cache.NoExpiration, 0)
	// A missing or unreadable snapshot just means a fresh environment.
	_ = items.LoadFile(path)
	return &FileEnvironment{
		path:  path,
		items: items,
		attrs: make(map[string]string),
	}
}

func (e *FileEnvironment) GetItem(key string) (string, bool) {
	if x, found := e.items.Get(key); found {
		return x.(string), true
	}
	return "", false
}

func (e *FileEnvironment) SetItem(key, value string) {
	e.items.Set(key, value, cache.NoExpiration)
	e.snapshot()
}

func (e *FileEnvironment) RemoveItem(key string) {
	e.items.Delete(key)
	e.snapshot()
}

func (e *FileEnvironment) SetAttribute(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[name] = value
}

func (e *FileEnvironment) RemoveAttribute(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.attrs, name)
}

func (e *FileEnvironment) snapshot() {
	_ = e.items.SaveFile(e.path)
}
