package artext

// MaxEditDistance returns the edit-distance tolerance for a token of the
// given length. Short tokens get no tolerance so they only match exactly.
func MaxEditDistance(token string) int {
	l := len([]rune(token))
	switch {
	case l <= 3:
		return 0
	case l <= 5:
		return 1
	case l <= 8:
		return 2
	default:
		return 3
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func min3(a, b, c int) int {
	return minInt(minInt(a, b), c)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// EditDistanceWithin computes the Levenshtein distance between a and b if it
// does not exceed max, with early exit as soon as the band overflows.
func EditDistanceWithin(a, b string, max int) (int, bool) {
	if max < 0 {
		return 0, false
	}
	if a == b {
		return 0, true
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		if len(rb) <= max {
			return len(rb), true
		}
		return 0, false
	}
	if len(rb) == 0 {
		if len(ra) <= max {
			return len(ra), true
		}
		return 0, false
	}
	if absInt(len(ra)-len(rb)) > max {
		return 0, false
	}
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i, raChar := range ra {
		curr[0] = i + 1
		minRow := curr[0]
		for j, rbChar := range rb {
			cost := 0
			if raChar != rbChar {
				cost = 1
			}
			del := prev[j+1] + 1
			ins := curr[j] + 1
			sub := prev[j] + cost
			v := min3(del, ins, sub)
			curr[j+1] = v
			if v < minRow {
				minRow = v
			}
		}
		if minRow > max {
			return 0, false
		}
		prev, curr = curr, prev
	}

	dist := prev[len(rb)]
	if dist <= max {
		return dist, true
	}
	return 0, false
}

func ngramSet(input string, n int) map[string]struct{} {
	if n <= 0 {
		return nil
	}
	runes := []rune(input)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) < n {
		return map[string]struct{}{string(runes): {}}
	}
	set := make(map[string]struct{}, len(runes)-n+1)
	for i := 0; i <= len(runes)-n; i++ {
		set[string(runes[i:i+n])] = struct{}{}
	}
	return set
}

// NgramSimilarity returns the Jaccard similarity of the rune n-gram sets of
// a and b, in [0,1].
func NgramSimilarity(a, b string, n int) float64 {
	setA := ngramSet(a, n)
	setB := ngramSet(b, n)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	for gram := range setA {
		if _, ok := setB[gram]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
