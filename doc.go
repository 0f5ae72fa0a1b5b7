// Package fuzzgo provides a high-throughput fuzzy string matcher for Go.
//
// Fuzzgo ranks a mutable corpus of candidate strings (typically file paths)
// against short queries, rewarding matches that hug word and path boundaries
// and penalizing scattered ones. It is built to sit behind interactive fuzzy
// finder UIs where a query arrives per keystroke over corpora of 10^4-10^6
// paths:
//
//   - Memoized dynamic-programming scorer with boundary-aware weighting
//   - 26-bit letter bitmask prefilter to skip hopeless candidates cheaply
//   - Bounded top-K min-heaps, so memory stays flat regardless of corpus size
//   - Optional parallel scans over contiguous corpus shards
//   - Pooled per-call scratch buffers, no allocation in the hot loop
//
// # Quick Start
//
//	m := fuzzgo.New()
//	m.AddBatch([]string{
//	    "path/to/file.js",
//	    "foo/bar.js",
//	    "file.js",
//	})
//
//	results := m.Find(ctx, "file", func(o *fuzzgo.FindOptions) {
//	    o.MaxResults = 10
//	})
//	for _, r := range results {
//	    fmt.Printf("%.3f %s\n", r.Score, r.Value)
//	}
//
// Parallel scans with highlighted match positions:
//
//	results := m.Find(ctx, query, func(o *fuzzgo.FindOptions) {
//	    o.NumThreads = runtime.NumCPU()
//	    o.MaxResults = 25
//	    o.RecordMatchIndexes = true
//	})
//
// # Semantics
//
// Scores are in [0, 1]; 1 means the query matches a candidate exactly, 0
// means the query's bytes do not occur in order in the candidate and the
// candidate is omitted. Results are ordered by descending score, ties broken
// by shorter value. Matching is byte-wise and ASCII-aware: case folding
// covers only 'A'-'Z', and non-ASCII bytes participate literally.
//
// Find may run concurrently with other Finds. Mutations (Add, Remove,
// Clear, ...) take the corpus write lock and must not be interleaved with a
// Find from the same goroutine.
package fuzzgo
