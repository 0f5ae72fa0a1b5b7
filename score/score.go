// Package score implements the per-candidate fuzzy scoring kernel.
//
// Given a haystack (candidate string, typically a file path) and a needle
// (normalized query), it searches for the best alignment of needle bytes to
// haystack bytes, in order but not necessarily contiguous. Each aligned byte
// contributes a multiplier: 1.0 for a contiguous continuation, a boundary
// bonus after '/', '-', '_', ' ', digits, '.' or at a camel-case edge, and a
// decaying distance penalty otherwise. The product over all needle bytes,
// normalized by how much of the path tail was consumed and scaled back up by
// the needle length, yields a score in [0, 1] where 1 means an exact match.
//
// The search is a memoized recursion over (needle position, haystack
// position). A one-pass right-to-left prescan computes the last feasible
// haystack position for every needle byte, which both rejects non-matches
// early and bounds every scan in the recursion.
//
// The kernel operates on bytes and is ASCII-aware only: case folding covers
// 'A'-'Z' and boundary detection misses non-ASCII letters. Multi-byte UTF-8
// sequences degrade gracefully to byte-wise matching.
package score

import "sync"

const (
	// baseDistancePenalty is the multiplier for the first gap inside a scan.
	baseDistancePenalty float32 = 0.6

	// additionalDistancePenalty is subtracted from the penalty for every
	// further gapped match in the same scan.
	additionalDistancePenalty float32 = 0.05

	// minDistancePenalty is the decay floor. The epsilon absorbs float32
	// rounding on repeated subtraction.
	minDistancePenalty float32 = 0.2 + 1e-9

	// smartCasePenalty is applied when the raw needle byte differs from the
	// raw haystack byte even though the folded bytes matched.
	smartCasePenalty float32 = 0.9

	// maxMemoSize bounds the DP state space. Pairs whose needle x haystack
	// product reaches it are scored with the estimator instead.
	maxMemoSize = 10000
)

// Options controls a single scoring call.
type Options struct {
	// CaseSensitive compares raw bytes instead of the folded forms.
	CaseSensitive bool

	// SmartCase mildly penalizes aligned bytes whose raw case differs, so a
	// query typed with capitals ranks exact-case candidates higher.
	SmartCase bool

	// MaxGap bounds the haystack distance between consecutive aligned bytes.
	// Zero means no bound beyond the prescan limits.
	MaxGap int
}

// matchInfo carries one scoring call through the recursion.
type matchInfo struct {
	haystack     string
	haystackCase string
	needle       string
	needleCase   string
	smartCase    bool
	maxGap       int
	last         []int
	memo         []float32
	best         []int32
}

// scratch holds the per-call buffers. Pooled and grown on demand so the hot
// loop of a corpus scan does not allocate.
type scratch struct {
	last []int
	memo []float32
	best []int32
}

var scratchPool = sync.Pool{
	New: func() any {
		return &scratch{}
	},
}

// Match scores haystack against needle and returns a value in [0, 1].
// Zero means the needle is not an ordered subsequence of the haystack under
// the active case policy.
//
// haystackLower and needleLower must be the ASCII-folded forms of haystack
// and needle; they are ignored when opts.CaseSensitive is set.
func Match(haystack, haystackLower, needle, needleLower string, opts Options) float32 {
	s, _ := match(haystack, haystackLower, needle, needleLower, opts, nil)
	return s
}

// MatchIndexes scores like Match and additionally reports the haystack byte
// index chosen for each needle byte. The returned indexes are strictly
// increasing and have length len(needle); they are nil when the score is
// zero or the needle is empty.
func MatchIndexes(haystack, haystackLower, needle, needleLower string, opts Options) (float32, []int) {
	if len(needle) == 0 {
		return 1.0, nil
	}
	indexes := make([]int, len(needle))
	s, ok := match(haystack, haystackLower, needle, needleLower, opts, indexes)
	if !ok {
		return s, nil
	}
	return s, indexes
}

func match(haystack, haystackLower, needle, needleLower string, opts Options, indexes []int) (float32, bool) {
	if len(needle) == 0 {
		return 1.0, false
	}

	m := matchInfo{
		haystack:     haystack,
		haystackCase: haystackLower,
		needle:       needle,
		needleCase:   needleLower,
		smartCase:    opts.SmartCase,
		maxGap:       opts.MaxGap,
	}
	if opts.CaseSensitive {
		m.haystackCase = haystack
		m.needleCase = needle
	}

	s := scratchPool.Get().(*scratch)
	defer scratchPool.Put(s)

	haystackLen := len(haystack)
	needleLen := len(needle)
	m.last = growInts(&s.last, needleLen)

	// Prescan: verify the needle embeds into the haystack at all, recording
	// the last feasible position per needle byte. These limits prune the
	// recursion heavily in practice.
	hindex := haystackLen - 1
	for i := needleLen - 1; i >= 0; i-- {
		for hindex >= 0 && m.haystackCase[hindex] != m.needleCase[i] {
			hindex--
		}
		if hindex < 0 {
			return 0, false
		}
		m.last[i] = hindex
		hindex--
	}

	memoSize := haystackLen * needleLen
	if memoSize >= maxMemoSize {
		// State space too large; estimate from the prescan positions alone.
		penalty := float32(1.0)
		for i := 1; i < needleLen; i++ {
			if m.last[i] != m.last[i-1]+1 {
				penalty *= baseDistancePenalty
			}
		}
		if indexes != nil {
			copy(indexes, m.last[:needleLen])
		}
		return penalty * float32(needleLen) / float32(haystackLen), true
	}

	m.memo = growFloats(&s.memo, memoSize)
	for i := range m.memo {
		m.memo[i] = memoSentinel
	}
	if indexes != nil {
		m.best = growInt32s(&s.best, memoSize)
	}

	// The recursion normalizes by the consumed path tail; scale back up by
	// the needle length so an exact match scores 1.
	result := float32(needleLen) * m.recursiveMatch(0, 0)
	if result <= 0 {
		return 0, false
	}

	if indexes != nil {
		currStart := 0
		for i := 0; i < needleLen; i++ {
			idx := int(m.best[i*haystackLen+currStart])
			indexes[i] = idx
			currStart = idx + 1
		}
	}

	return result, true
}

// memoSentinel marks an uncomputed DP cell. Real cell values are scores and
// intermediate products, all non-negative.
const memoSentinel float32 = -1

// recursiveMatch returns the best score for aligning the needle suffix
// starting at needleIdx against the haystack suffix starting at haystackIdx.
func (m *matchInfo) recursiveMatch(haystackIdx, needleIdx int) float32 {
	if needleIdx == len(m.needle) {
		return 1
	}

	haystackLen := len(m.haystack)
	cell := needleIdx*haystackLen + haystackIdx
	if v := m.memo[cell]; v != memoSentinel {
		return v
	}

	var score float32
	bestMatch := 0
	c := m.needleCase[needleIdx]

	lim := m.last[needleIdx]
	if needleIdx > 0 && m.maxGap > 0 && haystackIdx+m.maxGap < lim {
		lim = haystackIdx + m.maxGap
	}

	// lastSlash is only meaningful in the root frame (needleIdx == 0), where
	// the scan starts at haystack position 0.
	lastSlash := 0
	distPenalty := baseDistancePenalty
	for j := haystackIdx; j <= lim; j++ {
		d := m.haystackCase[j]
		if needleIdx == 0 && (d == '/' || d == '\\') {
			lastSlash = j
		}
		if c != d {
			continue
		}

		charScore := float32(1.0)
		if j > haystackIdx {
			// Context weighting reads the raw haystack; case matters for
			// the camel-case boundary.
			prev := m.haystack[j-1]
			curr := m.haystack[j]
			switch {
			case prev == '/':
				charScore = 0.9
			case prev == '-' || prev == '_' || prev == ' ' || (prev >= '0' && prev <= '9'):
				charScore = 0.8
			case prev >= 'a' && prev <= 'z' && curr >= 'A' && curr <= 'Z':
				charScore = 0.8
			case prev == '.':
				charScore = 0.7
			default:
				charScore = distPenalty
			}
			// The penalty does not decay while placing the first needle byte.
			if needleIdx > 0 && distPenalty > minDistancePenalty {
				distPenalty -= additionalDistancePenalty
			}
		}

		if m.smartCase && m.needle[needleIdx] != m.haystack[j] {
			charScore *= smartCasePenalty
		}

		newScore := charScore * m.recursiveMatch(j+1, needleIdx+1)
		if needleIdx == 0 {
			// Normalize by the consumed tail of the path: matches confined
			// to the basename should not be diluted by leading directories.
			newScore /= float32(haystackLen - lastSlash)
		}
		if newScore > score {
			score = newScore
			bestMatch = j
			// Cannot do better than 1.
			if newScore == 1 {
				break
			}
		}
	}

	if m.best != nil {
		m.best[cell] = int32(bestMatch)
	}
	m.memo[cell] = score
	return score
}

func growInts(buf *[]int, n int) []int {
	if cap(*buf) < n {
		*buf = make([]int, n)
	}
	return (*buf)[:n]
}

func growFloats(buf *[]float32, n int) []float32 {
	if cap(*buf) < n {
		*buf = make([]float32, n)
	}
	return (*buf)[:n]
}

func growInt32s(buf *[]int32, n int) []int32 {
	if cap(*buf) < n {
		*buf = make([]int32, n)
	}
	return (*buf)[:n]
}
