package errs

// suggestCutoff is the worst score still worth showing to the user.
const suggestCutoff = 3

// Suggest picks the closest-looking candidate for needle. Scoring
// favors long common prefixes and similar lengths; returns "" when
// nothing scores within the cutoff.
func Suggest(needle string, candidates []string) string {
	best := ""
	bestScore := suggestCutoff + 1
	for _, c := range candidates {
		d := len(needle) - len(c)
		if d < 0 {
			d = -d
		}
		common := 0
		for common < len(needle) && common < len(c) && needle[common] == c[common] {
			common++
		}
		score := d - common
		if score < 0 {
			score = 0
		}
		if score < bestScore {
			best, bestScore = c, score
		}
	}
	return best
}
