package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lower(s string) string {
	return strings.ToLower(s)
}

func TestMatch(t *testing.T) {
	t.Run("empty needle", func(t *testing.T) {
		assert.Equal(t, float32(1.0), Match("anything", "anything", "", "", Options{}))
		assert.Equal(t, float32(1.0), Match("", "", "", "", Options{}))
	})

	t.Run("exact match scores one", func(t *testing.T) {
		for _, s := range []string{"a", "file.js", "/path/to/File.go", "x-y_z 1"} {
			assert.Equal(t, float32(1.0), Match(s, lower(s), s, lower(s), Options{CaseSensitive: true}), s)
		}
	})

	t.Run("not a subsequence scores zero", func(t *testing.T) {
		assert.Equal(t, float32(0), Match("foo/bar.js", "foo/bar.js", "file", "file", Options{}))
		assert.Equal(t, float32(0), Match("", "", "a", "a", Options{}))
		assert.Equal(t, float32(0), Match("cba", "cba", "abc", "abc", Options{}))
	})

	t.Run("case sensitivity", func(t *testing.T) {
		assert.Equal(t, float32(0), Match("abC", "abc", "abc", "abc", Options{CaseSensitive: true}))
		assert.Positive(t, Match("abC", "abc", "abc", "abc", Options{}))
	})

	t.Run("scores stay in range", func(t *testing.T) {
		haystacks := []string{"", "a", "path/to/file.js", "AlphaBetaCappa", "a-b-c", strings.Repeat("ab", 600)}
		needles := []string{"", "a", "afj", "abc", "zzz", "ab"}
		for _, h := range haystacks {
			for _, n := range needles {
				s := Match(h, lower(h), n, lower(n), Options{})
				assert.GreaterOrEqual(t, s, float32(0))
				assert.LessOrEqual(t, s, float32(1))
			}
		}
	})

	t.Run("word boundary weights", func(t *testing.T) {
		// 'b' and 'c' both sit behind '-', worth 0.8 each; the first char is
		// normalized by the full length: 3 * (1/5 * 0.8 * 0.8) = 0.384.
		s := Match("a-b-c", "a-b-c", "abc", "abc", Options{})
		assert.InDelta(t, 0.384, s, 1e-6)
	})

	t.Run("plain gaps cost the base penalty", func(t *testing.T) {
		// Plain gaps cost the base 0.6 multiplier:
		// 3 * (1/6 * 0.6 * 0.6) = 0.18.
		s := Match("abcdef", "abcdef", "ace", "ace", Options{})
		assert.InDelta(t, 0.18, s, 1e-6)
		assert.Less(t, s, float32(0.2))
	})

	t.Run("camel case boundary", func(t *testing.T) {
		// 'd' matches the 'D' behind lowercase 'c', a camel boundary worth
		// 0.8; smart case shaves both aligned bytes whose raw case differs:
		// 2 * (1*0.9/6 * 0.8*0.9) = 0.216.
		s := Match("AbcDef", "abcdef", "ad", "ad", Options{SmartCase: true})
		assert.InDelta(t, 0.216, s, 1e-6)
	})

	t.Run("smart case penalizes raw mismatch only", func(t *testing.T) {
		exact := Match("abc", "abc", "abc", "abc", Options{SmartCase: true})
		folded := Match("Abc", "abc", "abc", "abc", Options{SmartCase: true})
		assert.Equal(t, float32(1.0), exact)
		assert.InDelta(t, 0.9, folded, 1e-6)
	})

	t.Run("basename matches beat deep path matches", func(t *testing.T) {
		short := Match("file.js", "file.js", "file", "file", Options{})
		deep := Match("path/to/file.js", "path/to/file.js", "file", "file", Options{})
		assert.Greater(t, short, deep)
		assert.Positive(t, deep)
	})

	t.Run("max gap rejects scattered matches", func(t *testing.T) {
		assert.Positive(t, Match("axxbc", "axxbc", "abc", "abc", Options{}))
		assert.Equal(t, float32(0), Match("axxbc", "axxbc", "abc", "abc", Options{MaxGap: 1}))
		assert.Positive(t, Match("abc", "abc", "abc", "abc", Options{MaxGap: 1}))
	})
}

func TestMatchIndexes(t *testing.T) {
	t.Run("contiguous match", func(t *testing.T) {
		s, indexes := MatchIndexes("abcd", "abcd", "abc", "abc", Options{})
		assert.Positive(t, s)
		assert.Equal(t, []int{0, 1, 2}, indexes)
	})

	t.Run("boundary-driven alignment", func(t *testing.T) {
		// Starting at a@0 or a@4 scores the same (0.6 * 0.6 over 14); the
		// first-seen alignment wins the tie.
		s, indexes := MatchIndexes("alphabetacappa", "alphabetacappa", "abc", "abc", Options{})
		assert.Positive(t, s)
		assert.Equal(t, []int{0, 5, 9}, indexes)
	})

	t.Run("no match yields nil", func(t *testing.T) {
		s, indexes := MatchIndexes("foo", "foo", "abc", "abc", Options{})
		assert.Equal(t, float32(0), s)
		assert.Nil(t, indexes)
	})

	t.Run("indexes strictly increase and align", func(t *testing.T) {
		haystack := "/path1/path2/zzz/path4"
		s, indexes := MatchIndexes(haystack, haystack, "pzp", "pzp", Options{})
		require.Positive(t, s)
		require.Len(t, indexes, 3)
		needle := "pzp"
		for i, idx := range indexes {
			if i > 0 {
				assert.Greater(t, idx, indexes[i-1])
			}
			assert.Equal(t, needle[i], haystack[idx])
		}
	})
}

func TestMatchFallbackEstimator(t *testing.T) {
	t.Run("contiguous tail", func(t *testing.T) {
		haystack := strings.Repeat("x", 2496) + "abcd"
		s, indexes := MatchIndexes(haystack, haystack, "abcd", "abcd", Options{})
		// 2500*4 cells is past the memo budget; the estimator sees a
		// contiguous embedding, so no gap penalty applies.
		assert.InDelta(t, 4.0/2500.0, s, 1e-7)
		assert.Equal(t, []int{2496, 2497, 2498, 2499}, indexes)
	})

	t.Run("gapped embedding", func(t *testing.T) {
		haystack := strings.Repeat("ab", 2500)
		s := Match(haystack, haystack, "aaa", "aaa", Options{})
		// Every consecutive pair of last-match positions is gapped:
		// 0.6^2 * 3 / 5000.
		assert.InDelta(t, 0.36*3.0/5000.0, s, 1e-9)
	})
}

func BenchmarkMatch(b *testing.B) {
	haystack := "src/internal/engine/search_coordinator_test.go"
	haystackLower := lower(haystack)

	b.Run("hit", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Match(haystack, haystackLower, "sect", "sect", Options{})
		}
	})

	b.Run("miss", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Match(haystack, haystackLower, "zqzq", "zqzq", Options{})
		}
	})
}
