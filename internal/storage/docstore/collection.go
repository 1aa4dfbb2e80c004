package docstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
)

// Collection is a named, file-backed table of records keyed by an int64
// identifier. Each collection owns one JSON file under the store directory:
//
//	data_dir/
//	  authors.json     # {"1": {...}, "2": {...}}
//	  books.json
//	  categories.json
//
// The file is read once when the collection is opened and rewritten wholesale
// on every mutation. Reads share the lock; writes (including identifier
// allocation) are exclusive.
type Collection[T any] struct {
	mu   sync.RWMutex
	name string
	path string
	idOf func(T) int64

	docs  map[int64]T
	order []int64 // insertion order; ascending ids after a reload
}

// OpenCollection loads (or initializes) the collection file under dir.
func OpenCollection[T any](dir, name string, idOf func(T) int64) (*Collection[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	c := &Collection[T]{
		name: name,
		path: filepath.Join(dir, name+".json"),
		idOf: idOf,
		docs: make(map[int64]T),
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("read %s collection: %w", name, err)
	}

	raw := map[string]T{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s collection: %w", name, err)
	}
	for key, doc := range raw {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decode %s collection: bad key %q", name, key)
		}
		c.docs[id] = doc
		c.order = append(c.order, id)
	}
	// Insertion order is not recoverable from a JSON object; fall back to
	// ascending identifiers, which matches it for append-only histories.
	sort.Slice(c.order, func(i, j int) bool { return c.order[i] < c.order[j] })

	return c, nil
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// save rewrites the collection file. Caller must hold the write lock.
func (c *Collection[T]) save() error {
	out := make(map[string]T, len(c.docs))
	for id, doc := range c.docs {
		out[strconv.FormatInt(id, 10)] = doc
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", c.name, err)
	}
	if err := os.WriteFile(c.path, b, 0o644); err != nil {
		return fmt.Errorf("write %s collection: %w", c.name, err)
	}
	return nil
}

// nextID computes max(id)+1, or 1 when empty. Caller must hold a lock.
func (c *Collection[T]) nextID() int64 {
	var max int64
	for id := range c.docs {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// NextID reports the identifier the next InsertNext call would assign.
func (c *Collection[T]) NextID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nextID()
}

// Insert appends a record whose identifier the caller already assigned.
// Fails with ErrDuplicateKey when the identifier is taken.
func (c *Collection[T]) Insert(doc T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	id := c.idOf(doc)
	if _, exists := c.docs[id]; exists {
		return zero, ErrDuplicateKey
	}

	c.docs[id] = doc
	c.order = append(c.order, id)
	if err := c.save(); err != nil {
		delete(c.docs, id)
		c.order = c.order[:len(c.order)-1]
		return zero, err
	}
	return doc, nil
}

// InsertNext allocates max(id)+1 and inserts the record built for it, all
// inside one write critical section so two in-flight creates cannot race to
// the same identifier.
func (c *Collection[T]) InsertNext(build func(id int64) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	id := c.nextID()
	doc := build(id)
	if got := c.idOf(doc); got != id {
		return zero, fmt.Errorf("%s collection: build assigned id %d, allocated %d", c.name, got, id)
	}

	c.docs[id] = doc
	c.order = append(c.order, id)
	if err := c.save(); err != nil {
		delete(c.docs, id)
		c.order = c.order[:len(c.order)-1]
		return zero, err
	}
	return doc, nil
}

// Get returns the record or ErrNotFound.
func (c *Collection[T]) Get(id int64) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return doc, nil
}

// Update replaces the record wholesale (not a merge) and returns it.
func (c *Collection[T]) Update(id int64, doc T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	prev, ok := c.docs[id]
	if !ok {
		return zero, ErrNotFound
	}

	c.docs[id] = doc
	if err := c.save(); err != nil {
		c.docs[id] = prev
		return zero, err
	}
	return doc, nil
}

// Remove deletes the record and returns the removed value.
func (c *Collection[T]) Remove(id int64) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	doc, ok := c.docs[id]
	if !ok {
		return zero, ErrNotFound
	}

	delete(c.docs, id)
	pos := -1
	for i, v := range c.order {
		if v == id {
			pos = i
			break
		}
	}
	c.order = append(c.order[:pos], c.order[pos+1:]...)
	if err := c.save(); err != nil {
		c.docs[id] = doc
		c.order = append(c.order, 0)
		copy(c.order[pos+1:], c.order[pos:])
		c.order[pos] = id
		return zero, err
	}
	return doc, nil
}

// Scan returns the records matching pred, in insertion order. The result is
// a fresh slice over current state; no cursor is retained between calls.
func (c *Collection[T]) Scan(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []T{}
	for _, id := range c.order {
		if doc := c.docs[id]; pred(doc) {
			out = append(out, doc)
		}
	}
	return out
}

// All returns every record in insertion order.
func (c *Collection[T]) All() []T {
	return c.Scan(func(T) bool { return true })
}

// Count reports how many records match pred.
func (c *Collection[T]) Count(pred func(T) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, doc := range c.docs {
		if pred(doc) {
			n++
		}
	}
	return n
}

// Len reports the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}
