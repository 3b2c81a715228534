package comparison

import (
	"math"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// NameSimilarity scores two names on a 0..100 scale. Ratio compares the
// whole strings; PartialRatio compares the shorter string against the best
// matching window of the longer one.
type NameSimilarity struct {
	Ratio        int
	PartialRatio int
}

// LikelyRename reports whether two names are close enough that a change is
// probably an edit of the same activity rather than a different one.
func (n NameSimilarity) LikelyRename() bool {
	return n.Ratio >= 80 || n.PartialRatio >= 90
}

func Similarity(a, b string) NameSimilarity {
	return NameSimilarity{Ratio: ratio(a, b), PartialRatio: partialRatio(a, b)}
}

func ratio(a, b string) int {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := max(la, lb)
	if longest == 0 {
		return 100
	}
	dist := fuzzy.LevenshteinDistance(a, b)
	return int(math.Round((1 - float64(dist)/float64(longest)) * 100))
}

func partialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		if len(long) == 0 {
			return 100
		}
		return 0
	}

	best := 0
	s := string(short)
	for i := 0; i+len(short) <= len(long); i++ {
		r := ratio(s, string(long[i:i+len(short)]))
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}
