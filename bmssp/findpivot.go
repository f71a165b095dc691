package bmssp

import "github.com/duanbmssp/bmssp/length"

// cycleInProgress marks a vertex currently being visited by
// subtreeSize's DFS, the same sentinel phr3nzy-duan-sssp/sssp.go's
// makeTreeSizeCalculator uses to tolerate a zero-weight relaxation tie
// forming a cycle in F instead of looping forever.
const cycleInProgress = -1

// findPivot computes (P, W) for the current recursion level (spec.md
// §4.6): W is every vertex reachable from S within k relaxation
// layers while staying under bound, and P ⊆ S is the subset whose
// forward relaxation subtree in W has size ≥ k.
func (s *solver) findPivot(k int, bound length.Length, seed []int) (pivots, frontierSet []int, err error) {
	inW := make(map[int]bool, len(seed))
	for _, v := range seed {
		inW[v] = true
	}
	w := append([]int{}, seed...)

	limit := k * len(seed)
	layer := seed
	exceeded := false
	for i := 1; i <= k && len(layer) > 0 && !exceeded; i++ {
		var next []int
		for _, u := range layer {
			for _, e := range s.g.Adj[u] {
				candidate, ok := s.relax(u, e.To, e.Weight, bound)
				if !ok {
					continue
				}
				s.dhat[e.To] = candidate
				if inW[e.To] {
					continue
				}
				inW[e.To] = true
				w = append(w, e.To)
				next = append(next, e.To)
				if len(w)-len(seed) > limit {
					exceeded = true
				}
			}
		}
		layer = next
	}

	if exceeded {
		return append([]int{}, seed...), w, nil
	}

	children, isTarget := buildForest(s.g, s.dhat, inW, w)

	memo := make(map[int]int)
	var subtreeSize func(u int) int
	subtreeSize = func(u int) int {
		if sz, ok := memo[u]; ok {
			if sz == cycleInProgress {
				return 1
			}
			return sz
		}
		memo[u] = cycleInProgress
		total := 1
		for _, v := range children[u] {
			total += subtreeSize(v)
		}
		memo[u] = total
		return total
	}

	for _, v := range seed {
		if isTarget[v] {
			continue
		}
		if subtreeSize(v) >= k {
			pivots = append(pivots, v)
		}
	}
	return pivots, w, nil
}
