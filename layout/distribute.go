// SPDX-License-Identifier: Unlicense OR MIT

package layout

// distribute hands out free pixels to the filling entries of sizes.
//
// When free covers raising every filling entry to the largest filling
// minimum, they are equalized to that minimum and the rest is split
// evenly, the remainder going one pixel each to the first filling
// entries. Otherwise pixels go one at a time, round robin, to the
// filling entries still below the largest filling minimum. The unused
// amount is returned; it is free itself when nothing fills.
func distribute(sizes []int, fill []bool, free int) int {
	if free <= 0 {
		return free
	}
	var n, maxMin, sum int
	for i, f := range fill {
		if !f {
			continue
		}
		n++
		sum += sizes[i]
		maxMin = max(maxMin, sizes[i])
	}
	if n == 0 {
		return free
	}
	if need := n*maxMin - sum; free >= need {
		free -= need
		each := free / n
		free -= each * n
		for i, f := range fill {
			if !f {
				continue
			}
			sizes[i] = maxMin + each
			if free > 0 {
				sizes[i]++
				free--
			}
		}
		return 0
	}
	for free > 0 {
		for i, f := range fill {
			if f && sizes[i] < maxMin && free > 0 {
				sizes[i]++
				free--
			}
		}
	}
	return 0
}
