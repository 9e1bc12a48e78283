package lt

// GroupDegenerate partitions the indices of ascending eigenvalues into
// contiguous clusters. Index i joins the cluster of i−1 iff
//
//	vals[i] − eps ≤ vals[i−1]
//
// The test is one-sided and chains: a run of values each within eps of its
// predecessor forms one cluster even when its ends differ by more than eps.
//
// Complexity: O(n).
func GroupDegenerate(vals []float64, eps float64) [][]int {
	if len(vals) == 0 {
		return nil
	}

	groups := [][]int{{0}}
	for i := 1; i < len(vals); i++ {
		last := len(groups) - 1
		if vals[i]-eps <= vals[i-1] {
			groups[last] = append(groups[last], i)
			continue
		}
		groups = append(groups, []int{i})
	}

	return groups
}
