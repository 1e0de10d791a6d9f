package catalog

import (
	"fmt"
	"sync"

	"github.com/signalsfoundry/ds9-regions/model"
)

// EventType indicates what kind of change happened in the catalog.
type EventType int

const (
	EventRecordAdded EventType = iota
)

// Event is emitted to subscribers when the catalog changes.
type Event struct {
	Type   EventType
	Index  int
	Record model.RegionRecord
	Size   int
}

// Catalog is an ordered, thread-safe collection of region records.
// Names are not unique: repeated names denote re-observations.
type Catalog struct {
	mu sync.RWMutex

	records []model.RegionRecord

	nextSubID uint64
	subs      map[uint64]func(Event)
	subOrder  []uint64
}

// New constructs a catalog holding records in the given order.
func New(records ...model.RegionRecord) *Catalog {
	c := &Catalog{}
	c.records = append(c.records, records...)
	return c
}

// Add appends a record and notifies subscribers.
func (c *Catalog) Add(r model.RegionRecord) {
	c.mu.Lock()
	c.records = append(c.records, r)
	event := Event{
		Type:   EventRecordAdded,
		Index:  len(c.records) - 1,
		Record: r,
		Size:   len(c.records),
	}
	subs := make([]func(Event), 0, len(c.subOrder))
	for _, id := range c.subOrder {
		subs = append(subs, c.subs[id])
	}
	c.mu.Unlock()

	// Notify subscribers outside the lock to avoid deadlocks.
	for _, sub := range subs {
		sub(event)
	}
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// At returns the record at index i.
func (c *Catalog) At(i int) (model.RegionRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i < 0 || i >= len(c.records) {
		return model.RegionRecord{}, fmt.Errorf("record index %d out of range [0, %d)", i, len(c.records))
	}
	return c.records[i], nil
}

// Records returns a snapshot slice of all records in catalog order.
func (c *Catalog) Records() []model.RegionRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	res := make([]model.RegionRecord, len(c.records))
	copy(res, c.records)
	return res
}

// Subscribe registers a callback for catalog events. Callbacks run in
// subscription order. It returns an unsubscribe function; calling it more
// than once is a no-op.
func (c *Catalog) Subscribe(fn func(Event)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.subs == nil {
		c.subs = make(map[uint64]func(Event))
	}
	c.nextSubID++
	id := c.nextSubID
	c.subs[id] = fn
	c.subOrder = append(c.subOrder, id)

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.subs[id]; !ok {
			return
		}
		delete(c.subs, id)
		for i, sid := range c.subOrder {
			if sid == id {
				c.subOrder = append(c.subOrder[:i], c.subOrder[i+1:]...)
				break
			}
		}
	}
}
