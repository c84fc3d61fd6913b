package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/nikbrunner/ql/internal/link"
	"github.com/nikbrunner/ql/internal/model"
	"github.com/nikbrunner/ql/internal/storage"
)

// Storage keys. The record map and the order sequence are persisted
// independently so a reorder never rewrites the content blob.
const (
	KeyRecords = "quicklinks"
	KeyOrder   = "quicklinksorder"
)

const defaultQueueSize = 64

var (
	ErrInvalidURL   = errors.New("invalid URL")
	ErrDuplicateURL = errors.New("shortcut already exists")
	ErrNotFound     = errors.New("shortcut not found")
)

// write is one queued persistence request. The value is marshaled at
// schedule time so the writer goroutine never touches engine state.
type write struct {
	key   string
	value []byte
}

// Engine owns the shortcut records and their display order, and keeps
// both persisted to a key-value store. In-memory state is authoritative
// for the session; persistence is best-effort and never blocks a caller.
//
// All intent methods must be called from a single goroutine. Intents are
// applied optimistically in memory; the only asynchronous part is the
// write queue drained by the engine's writer goroutine.
type Engine struct {
	kv           storage.KV
	iconProvider string

	records map[string]model.Shortcut
	order   []string

	// ready flips after Load finishes reconciling persisted state.
	// Until then, mutation-triggered writes are suppressed so an empty
	// in-memory order cannot overwrite previously persisted data.
	ready bool

	writes chan write
	done   chan struct{}
}

// Params holds parameters for creating a new Engine.
type Params struct {
	KV           storage.KV
	IconProvider string // optional, defaults to the config default
	QueueSize    int    // optional write queue capacity
}

// New creates an Engine. It does not touch storage; call Load before
// applying intents.
func New(params Params) *Engine {
	iconProvider := params.IconProvider
	if iconProvider == "" {
		iconProvider = storage.DefaultConfig().IconProvider
	}

	queueSize := params.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	e := &Engine{
		kv:           params.KV,
		iconProvider: iconProvider,
		records:      map[string]model.Shortcut{},
		order:        []string{},
		writes:       make(chan write, queueSize),
		done:         make(chan struct{}),
	}

	go e.runWriter()
	return e
}

// runWriter drains the write queue. One goroutine and one FIFO channel
// keep per-key writes in issuance order. Failures are swallowed: the
// storage backend is a durability sink, not a source of truth.
func (e *Engine) runWriter() {
	for w := range e.writes {
		_ = e.kv.Set(w.key, w.value)
	}
	close(e.done)
}

// Close flushes queued writes and stops the writer goroutine.
// The engine must not be used after Close.
func (e *Engine) Close() {
	close(e.writes)
	<-e.done
}

// Load reads persisted state and reconciles the order index with the
// record store:
//
//  1. A missing record map initializes to empty and is persisted so the
//     key exists for future reads.
//  2. A persisted non-empty order is adopted verbatim, even if it
//     references ids no longer present; stale ids are filtered when the
//     ordered view is read, never purged eagerly.
//  3. No persisted order but existing records: an order is synthesized
//     from the record keys and persisted before any mutation is accepted.
//  4. Both empty: an empty order is adopted and persisted.
//
// Only after Load returns does the engine accept mutation-triggered
// persistence; Load's own writes are synchronous.
func (e *Engine) Load() error {
	data, err := e.kv.Get(KeyRecords)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	if data == nil {
		e.records = map[string]model.Shortcut{}
		if err := e.persistRecordsNow(); err != nil {
			return err
		}
	} else {
		records := map[string]model.Shortcut{}
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("load records: %w", err)
		}
		e.records = records
	}

	orderData, err := e.kv.Get(KeyOrder)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}

	var persisted []string
	if orderData != nil {
		if err := json.Unmarshal(orderData, &persisted); err != nil {
			return fmt.Errorf("load order: %w", err)
		}
	}

	switch {
	case len(persisted) > 0:
		e.order = persisted

	case len(e.records) > 0:
		// Legacy data written before ordering existed: synthesize an
		// order from the record keys. Map iteration is randomized, so
		// the keys are sorted to keep the result stable across runs.
		keys := make([]string, 0, len(e.records))
		for id := range e.records {
			keys = append(keys, id)
		}
		sort.Strings(keys)
		e.order = keys
		if err := e.persistOrderNow(); err != nil {
			return err
		}

	default:
		e.order = []string{}
		if err := e.persistOrderNow(); err != nil {
			return err
		}
	}

	e.ready = true
	return nil
}

// Ready reports whether Load has completed.
func (e *Engine) Ready() bool {
	return e.ready
}

// AddOrEdit creates a shortcut, or edits the one identified by editingID
// when it is non-empty. The URL must be well-formed and not already used
// by another shortcut; editing a shortcut to its own unchanged URL is
// allowed. The icon URL is re-derived from the URL's domain either way.
// Returns the id of the created or edited shortcut.
func (e *Engine) AddOrEdit(editingID, name, url string) (string, error) {
	url = link.Normalize(url)
	if !link.IsValid(url) {
		return "", ErrInvalidURL
	}
	if link.Exists(e.records, url, editingID) {
		return "", ErrDuplicateURL
	}

	iconURL := link.IconURL(e.iconProvider, url)

	if editingID != "" {
		record, ok := e.records[editingID]
		if !ok {
			return "", ErrNotFound
		}
		record.Name = name
		record.URL = url
		record.IconURL = iconURL
		e.records[editingID] = record

		e.scheduleWrite(KeyRecords, e.recordsSnapshot())
		return editingID, nil
	}

	s := model.NewShortcut(model.NewShortcutParams{
		Name:    name,
		URL:     url,
		IconURL: iconURL,
	})
	e.records[s.ID] = s
	e.order = append(e.order, s.ID)

	e.scheduleWrite(KeyRecords, e.recordsSnapshot())
	e.scheduleWrite(KeyOrder, e.orderSnapshot())
	return s.ID, nil
}

// Remove deletes the shortcut and its order entry. No-op if absent.
func (e *Engine) Remove(id string) {
	if _, ok := e.records[id]; !ok {
		return
	}
	delete(e.records, id)

	for i, entry := range e.order {
		if entry == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}

	e.scheduleWrite(KeyRecords, e.recordsSnapshot())
	e.scheduleWrite(KeyOrder, e.orderSnapshot())
}

// Move relocates id to the position beforeID currently occupies, shifting
// the entries in between by one. The relative order of all other entries
// is preserved. Silent no-op when either id is missing from the order or
// the positions are equal.
func (e *Engine) Move(id, beforeID string) {
	src := indexOf(e.order, id)
	dst := indexOf(e.order, beforeID)
	if src < 0 || dst < 0 || src == dst {
		return
	}

	moved := e.order[src]
	e.order = append(e.order[:src], e.order[src+1:]...)
	e.order = append(e.order[:dst], append([]string{moved}, e.order[dst:]...)...)

	e.scheduleWrite(KeyOrder, e.orderSnapshot())
}

// Get returns the shortcut with the given id.
func (e *Engine) Get(id string) (model.Shortcut, bool) {
	s, ok := e.records[id]
	return s, ok
}

// Len returns the number of stored shortcuts.
func (e *Engine) Len() int {
	return len(e.records)
}

// Shortcuts returns shortcuts in display order. Stale order entries
// (ids with no record) are skipped rather than treated as an error.
func (e *Engine) Shortcuts() []model.Shortcut {
	result := make([]model.Shortcut, 0, len(e.order))
	for _, id := range e.order {
		if s, ok := e.records[id]; ok {
			result = append(result, s)
		}
	}
	return result
}

// Order returns a copy of the raw order index, stale ids included.
func (e *Engine) Order() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// scheduleWrite queues a persistence write. Suppressed before Load
// completes; dropped when the queue is full. Both are acceptable under
// the best-effort durability contract.
func (e *Engine) scheduleWrite(key string, value []byte) {
	if !e.ready {
		return
	}
	select {
	case e.writes <- write{key: key, value: value}:
	default:
	}
}

// persistRecordsNow writes the record map synchronously (bootstrap only).
func (e *Engine) persistRecordsNow() error {
	if err := e.kv.Set(KeyRecords, e.recordsSnapshot()); err != nil {
		return fmt.Errorf("persist records: %w", err)
	}
	return nil
}

// persistOrderNow writes the order synchronously (bootstrap only).
func (e *Engine) persistOrderNow() error {
	if err := e.kv.Set(KeyOrder, e.orderSnapshot()); err != nil {
		return fmt.Errorf("persist order: %w", err)
	}
	return nil
}

func (e *Engine) recordsSnapshot() []byte {
	data, _ := json.Marshal(e.records)
	return data
}

func (e *Engine) orderSnapshot() []byte {
	data, _ := json.Marshal(e.order)
	return data
}

func indexOf(ids []string, id string) int {
	for i, entry := range ids {
		if entry == id {
			return i
		}
	}
	return -1
}
