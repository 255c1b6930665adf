package sampler

// Shuffle permutes seq in place so that each of the N! permutations is
// equally likely, given an unbiased engine. Elements are copied into a
// working pool; each position draws a uniform index into the remaining pool
// and removes the chosen element. O(N) draws, O(N) scratch, released on
// return.
func Shuffle[T Unsigned, E any](g *Generator[T], seq []E) {
	if len(seq) == 0 {
		return
	}
	pool := append([]E(nil), seq...)
	for i := range seq {
		j, _ := g.NextInRange(0, T(len(pool)-1))
		seq[i] = pool[j]
		pool = append(pool[:j], pool[j+1:]...)
	}
}
