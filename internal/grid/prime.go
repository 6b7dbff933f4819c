package grid

// IsPrime reports whether n is prime using trial division over the 6k±1
// wheel up to sqrt(n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 || n == 5 {
		return true
	}
	if n%2 == 0 || n%3 == 0 || n%5 == 0 {
		return false
	}
	step := 4
	for p := 7; p*p <= n; p += step {
		if n%p == 0 {
			return false
		}
		step = 6 - step
	}
	return true
}
