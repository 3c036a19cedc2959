// Package shell implements the interactive loop: it prompts for a bound,
// validates the line it reads, and prints the FizzBuzz tokens for it. The
// loop is iterative and ends on end of input or context cancellation.
package shell
