package fuzzgo

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fuzzgo/internal/queue"
	"github.com/hupe1980/fuzzgo/score"
)

// FindOptions contains options for a single Find call.
type FindOptions struct {
	// CaseSensitive disables folding of the query; scoring compares raw
	// bytes.
	CaseSensitive bool

	// SmartCase keeps matching case-insensitive but mildly penalizes
	// candidates whose case differs from the query's, so typed capitals pull
	// exact-case results up.
	SmartCase bool

	// NumThreads is the number of parallel shard workers. With 0, or while
	// the corpus is below the matcher's parallel threshold, the scan is
	// single-threaded.
	NumThreads int

	// MaxResults caps the number of returned results. 0 means unlimited.
	MaxResults int

	// MaxGap bounds the haystack distance between consecutive matched
	// bytes. 0 means no bound.
	MaxGap int

	// RecordMatchIndexes attaches the matched byte positions to each
	// returned result. The positions are recomputed for the winners only,
	// keeping index buffers out of the scan's hot path.
	RecordMatchIndexes bool
}

// MatchResult is one ranked candidate.
type MatchResult struct {
	// Score is the match quality in [0, 1]; 1 is an exact match.
	Score float32

	// Value is the candidate string.
	Value string

	// MatchIndexes lists the byte index in Value chosen for each byte of
	// the normalized query, strictly increasing. Only populated when
	// FindOptions.RecordMatchIndexes is set.
	MatchIndexes []int
}

// Find ranks the corpus against query and returns the best matches in
// descending score order, ties broken by shorter value. Candidates the query
// cannot embed into are omitted.
//
// The query is normalized first: ASCII whitespace is stripped, and unless
// CaseSensitive is set the remainder is folded to lowercase. An empty
// normalized query matches every candidate with score 1.
//
// Find holds the corpus read lock until it returns; it never blocks on
// anything else and runs to completion regardless of ctx.
func (m *Matcher) Find(ctx context.Context, query string, optFns ...func(o *FindOptions)) []MatchResult {
	start := time.Now()

	var opts FindOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	// The raw form survives normalization so smart case can compare the
	// bytes the user actually typed.
	needle := stripSpace(query)
	needleLower := toLower(needle)
	mask := letterBitmask(needleLower)

	scoreOpts := score.Options{
		CaseSensitive: opts.CaseSensitive,
		SmartCase:     opts.SmartCase,
		MaxGap:        opts.MaxGap,
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var result *queue.Bounded
	if opts.NumThreads <= 0 || len(m.candidates) < m.parallelThreshold {
		result = queue.NewBounded(opts.MaxResults)
		scanShard(m.candidates, 0, needle, needleLower, mask, scoreOpts, result)
	} else {
		result = m.findParallel(needle, needleLower, mask, scoreOpts, opts)
	}

	items := result.Drain()
	matches := make([]MatchResult, len(items))
	for i, item := range items {
		matches[i] = MatchResult{
			Score: item.Score,
			Value: item.Value,
		}
		if opts.RecordMatchIndexes {
			c := &m.candidates[item.Ref]
			_, indexes := score.MatchIndexes(c.value, c.lower, needle, needleLower, scoreOpts)
			matches[i].MatchIndexes = indexes
		}
	}

	m.metrics.RecordFind(time.Since(start), len(matches))
	m.logger.LogFind(ctx, len(needle), len(matches))
	return matches
}

// findParallel splits the corpus into NumThreads contiguous shards, scans
// each on its own goroutine with a private heap, and merges the shard heaps
// in shard order. Workers share nothing, so the outcome does not depend on
// scheduling, and the retained scores are those of a serial scan. Which of
// several equally scored candidates fill the last slots can depend on the
// shard layout, since an equal score never displaces a retained item.
func (m *Matcher) findParallel(needle, needleLower string, mask uint32, scoreOpts score.Options, opts FindOptions) *queue.Bounded {
	numThreads := opts.NumThreads
	heaps := make([]*queue.Bounded, numThreads)

	var g errgroup.Group
	curStart := 0
	for i := 0; i < numThreads; i++ {
		chunkSize := len(m.candidates) / numThreads
		// Distribute the remainder among the first shards.
		if i < len(m.candidates)%numThreads {
			chunkSize++
		}

		shard := m.candidates[curStart : curStart+chunkSize]
		base := curStart
		shardHeap := queue.NewBounded(opts.MaxResults)
		heaps[i] = shardHeap
		g.Go(func() error {
			scanShard(shard, base, needle, needleLower, mask, scoreOpts, shardHeap)
			return nil
		})

		curStart += chunkSize
	}
	// Workers cannot fail; Wait is the join barrier.
	_ = g.Wait()

	combined := queue.NewBounded(opts.MaxResults)
	for _, h := range heaps {
		for h.Len() > 0 {
			combined.Push(h.Pop())
		}
	}
	return combined
}

// scanShard scores every candidate in cands that survives the bitmask
// prefilter and pushes nonzero scores onto result. base is the shard's
// offset into the corpus array.
func scanShard(cands []candidate, base int, needle, needleLower string, mask uint32, opts score.Options, result *queue.Bounded) {
	for i := range cands {
		c := &cands[i]
		if c.bitmask&mask != mask {
			continue
		}
		s := score.Match(c.value, c.lower, needle, needleLower, opts)
		if s > 0 {
			result.Push(queue.Item{
				Score: s,
				Value: c.value,
				Ref:   base + i,
			})
		}
	}
}
