package poker

// Combinations returns every k-sized subset of the indexes [0, n) in lexicographic order
// C(7, 5) yields 21 subsets. If k > n, nil is returned.
func Combinations(n, k int) [][]int {
	if k > n || k <= 0 {
		return nil
	}

	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	combos := make([][]int, 0)
	for {
		combo := make([]int, k)
		copy(combo, indexes)
		combos = append(combos, combo)

		// find the right-most index that can still move forward
		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}

		if i < 0 {
			return combos
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}
