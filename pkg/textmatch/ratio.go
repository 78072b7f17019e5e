package textmatch

// Ratio computes a normalized similarity score between two strings.
// It follows the classic SequenceMatcher approach: find the longest
// matching blocks between the two strings and return 2*M/T, where M is
// the total number of matched characters and T the combined length.
// The result is always in [0, 1]; identical strings score 1.0.
func Ratio(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)

	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}

	matched := 0
	for _, block := range matchingBlocks(ar, br) {
		matched += block.size
	}

	return 2.0 * float64(matched) / float64(total)
}

type match struct {
	a, b, size int
}

type span struct {
	alo, ahi, blo, bhi int
}

// matchingBlocks returns the maximal matching blocks between a and b,
// found by recursively splitting around the longest common block.
func matchingBlocks(a, b []rune) []match {
	// Index positions of every rune in b for O(1) candidate lookup.
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	var blocks []match
	queue := []span{{0, len(a), 0, len(b)}}

	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		m := longestMatch(a, s.alo, s.ahi, s.blo, s.bhi, b2j)
		if m.size == 0 {
			continue
		}
		blocks = append(blocks, m)
		queue = append(queue,
			span{s.alo, m.a, s.blo, m.b},
			span{m.a + m.size, s.ahi, m.b + m.size, s.bhi},
		)
	}

	return blocks
}

// longestMatch finds the longest block where a[alo:ahi] and b[blo:bhi]
// agree, preferring the earliest such block on ties.
func longestMatch(a []rune, alo, ahi, blo, bhi int, b2j map[rune][]int) match {
	best := match{a: alo, b: blo}
	j2len := make(map[int]int)

	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > best.size {
				best = match{a: i - k + 1, b: j - k + 1, size: k}
			}
		}
		j2len = newj2len
	}

	return best
}
