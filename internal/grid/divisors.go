package grid

// Divisors returns every divisor of n in ascending order. It returns nil for
// n < 1.
func Divisors(n int) []int {
	if n < 1 {
		return nil
	}
	var low, high []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if j := n / i; j != i {
			high = append(high, j)
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}
	return low
}

// centralPair returns the two divisors straddling sqrt(n). ok is false when
// the divisor count is odd, i.e. n is a perfect square.
func centralPair(divs []int) (lo, hi int, ok bool) {
	if len(divs) < 2 || len(divs)%2 != 0 {
		return 0, 0, false
	}
	mid := len(divs) / 2
	return divs[mid-1], divs[mid], true
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	r := 0
	for bit := 1 << 30; bit > 0; bit >>= 1 {
		if c := r | bit; c <= n/c {
			r = c
		}
	}
	return r
}
