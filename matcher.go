package fuzzgo

import "sync"

// Matcher holds a mutable corpus of candidate strings and ranks it against
// queries. Candidates live in a growable array for fast table scans, with a
// value-to-slot map on the side for O(1) removal; queries dominate mutations
// in the intended workload, so scans get the favourable layout.
//
// All operations are safe for concurrent use: mutations take a write lock,
// Find holds the read lock for its full duration.
type Matcher struct {
	mu         sync.RWMutex
	candidates []candidate
	lookup     map[string]int

	parallelThreshold int
	metrics           MetricsCollector
	logger            *Logger
}

// New creates an empty Matcher.
func New(optFns ...Option) *Matcher {
	opts := applyOptions(optFns)

	return &Matcher{
		candidates:        make([]candidate, 0, opts.capacity),
		lookup:            make(map[string]int, opts.capacity),
		parallelThreshold: opts.parallelThreshold,
		metrics:           opts.metricsCollector,
		logger:            opts.logger,
	}
}

// Add inserts value into the corpus. Adding a value that is already present
// overwrites it in place.
func (m *Matcher) Add(value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.add(value)
	m.metrics.RecordAdd(1)
	m.logger.LogAdd(1, len(m.candidates))
}

// AddBatch inserts values into the corpus, reserving capacity up front.
// This is more efficient than calling Add per value.
//
// The corpus scan visits candidates in insertion order; callers that want
// uniform work distribution across parallel shards should pre-shuffle the
// batch. The matcher itself never consumes randomness, and scores do not
// depend on insertion order.
func (m *Matcher) AddBatch(values []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reserve(len(m.candidates) + len(values))
	for _, v := range values {
		m.add(v)
	}
	m.metrics.RecordAdd(len(values))
	m.logger.LogAdd(len(values), len(m.candidates))
}

// SetCandidates replaces the entire corpus with values.
func (m *Matcher) SetCandidates(values []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.candidates = m.candidates[:0]
	m.lookup = make(map[string]int, len(values))
	m.reserve(len(values))
	for _, v := range values {
		m.add(v)
	}
	m.metrics.RecordAdd(len(values))
	m.logger.LogAdd(len(values), len(m.candidates))
}

func (m *Matcher) add(value string) {
	if idx, ok := m.lookup[value]; ok {
		m.candidates[idx] = newCandidate(value)
		return
	}
	m.candidates = append(m.candidates, newCandidate(value))
	m.lookup[value] = len(m.candidates) - 1
}

// Remove deletes value from the corpus, reporting whether it was present.
// The vacated slot is filled by swapping the last candidate in.
func (m *Matcher) Remove(value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.lookup[value]
	if !ok {
		m.metrics.RecordRemove(false)
		return false
	}

	last := len(m.candidates) - 1
	if idx != last {
		m.candidates[idx] = m.candidates[last]
		m.lookup[m.candidates[idx].value] = idx
	}
	m.candidates = m.candidates[:last]
	delete(m.lookup, value)

	m.metrics.RecordRemove(true)
	m.logger.LogRemove(value, len(m.candidates))
	return true
}

// Has reports whether value is currently in the corpus.
func (m *Matcher) Has(value string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.lookup[value]
	return ok
}

// Clear empties the corpus.
func (m *Matcher) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.candidates = m.candidates[:0]
	m.lookup = make(map[string]int)
	m.logger.LogClear()
}

// Reserve grows the corpus capacity to hold at least n candidates without
// inserting anything.
func (m *Matcher) Reserve(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reserve(n)
}

func (m *Matcher) reserve(n int) {
	if n <= cap(m.candidates) {
		return
	}
	grown := make([]candidate, len(m.candidates), n)
	copy(grown, m.candidates)
	m.candidates = grown
}

// Len returns the number of candidates in the corpus.
func (m *Matcher) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.candidates)
}

// Stats returns a snapshot of corpus counters.
func (m *Matcher) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Stats{
		Candidates: len(m.candidates),
		Capacity:   cap(m.candidates),
	}
}

// Stats describes the corpus at a point in time.
type Stats struct {
	Candidates int
	Capacity   int
}
