package matcher

// Match is the best approximate-match result found in one record (§3
// "Result" span fields plus the error count used to compute Score).
type Match struct {
	Start  int
	End    int
	Errors int
	Score  float64
}

// Scan runs the Wu–Manber bit-parallel approximate search of p against
// text (already folded, since record text is folded at ingestion — §3
// "Byte"), and reports the best match, if any (§4.4 "Per-record scan").
//
// text is assumed to already have passed the signature admission test
// (§4.3); Scan does not re-check it.
func Scan(text []byte, p *Pattern) (Match, bool) {
	if p.m == 0 || len(text) == 0 {
		return Match{}, false
	}

	k := p.k
	var r [MaxErrors + 1]uint64 // R0..Rk state words, all start at 0 (§4.4)

	bestErrors := k + 1 // sentinel: no match found yet
	bestEnd := -1

	for i, c := range text {
		mask := p.masks[c]

		newR0 := ((r[0] << 1) | 1) & mask
		newR := [MaxErrors + 1]uint64{newR0}

		for j := 1; j <= k; j++ {
			substitution := ((r[j] << 1) | 1) & mask
			insertion := newR[j-1] << 1
			deletion := r[j-1] << 1
			noEdit := r[j-1]
			newR[j] = substitution | insertion | deletion | noEdit
		}

		for j := 0; j <= k; j++ {
			if newR[j]&p.matchMask != 0 {
				if j < bestErrors {
					bestErrors = j
					bestEnd = i
				}
				break // smallest j at this position already found
			}
		}

		r = newR
	}

	if bestEnd < 0 {
		return Match{}, false
	}

	start := bestEnd - p.m + 1 - bestErrors
	if start < 0 {
		start = 0
	}
	end := bestEnd + 1

	return Match{
		Start:  start,
		End:    end,
		Errors: bestErrors,
		Score:  score(bestErrors, start),
	}, true
}

// score implements §4.4 "Scoring": base = 1000 - 250*e, a position bonus
// clamp(50-s, 0, 50), summed and clamped to 1000, normalized to [0,1].
func score(errors, start int) float64 {
	base := 1000 - 250*errors
	bonus := 50 - start
	if bonus < 0 {
		bonus = 0
	}
	if bonus > 50 {
		bonus = 50
	}
	total := base + bonus
	if total > 1000 {
		total = 1000
	}
	if total < 0 {
		total = 0
	}
	return float64(total) / 1000.0
}
