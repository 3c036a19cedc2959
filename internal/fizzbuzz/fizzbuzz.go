// Package fizzbuzz computes FizzBuzz tokens. It performs no I/O.
package fizzbuzz

import (
	"iter"
	"strconv"
)

const (
	fizz = "Fizz"
	buzz = "Buzz"
)

// Token returns the FizzBuzz token for index i: "Fizz" when i is divisible
// by 3, "Buzz" when divisible by 5, "FizzBuzz" when divisible by both, and
// the decimal form of i otherwise.
func Token(i int) string {
	var res string
	if i%3 == 0 {
		res += fizz
	}
	if i%5 == 0 {
		res += buzz
	}
	if res == "" {
		return strconv.Itoa(i)
	}
	return res
}

// Sequence returns the tokens for indices 1..n in order. The sequence is
// lazy and may be ranged over any number of times. A bound below 1 yields
// nothing.
func Sequence(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 1; i <= n; i++ {
			if !yield(Token(i)) {
				return
			}
		}
	}
}
