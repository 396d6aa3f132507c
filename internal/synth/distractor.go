package synth

import "math/rand"

// PickDistractors selects up to count wrong options from candidates,
// uniformly at random without replacement. Results are distinct from each
// other and from correct. When fewer eligible candidates exist it returns
// what it has; it never errors and never loops.
func PickDistractors(correct string, candidates []string, count int) []string {
	seen := map[string]bool{correct: true}
	eligible := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		eligible = append(eligible, c)
	}

	rand.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	if len(eligible) > count {
		eligible = eligible[:count]
	}
	return eligible
}
