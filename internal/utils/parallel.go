// Package utils carries the small ambient helpers the teacher keeps under
// its own (unexported) internal/utils — reimplemented here because an
// internal package cannot be imported across module boundaries. Parallelize
// is grounded on the shape used throughout the teacher's prover code
// (internal/backend/<curve>/plonk/prove.go: "utils.Parallelize(len(...), func(start, end int) {...})").
package utils

import "runtime"

// Parallelize splits [0, nbIterations) into chunks and runs f on each chunk
// concurrently across GOMAXPROCS workers, blocking until all chunks are
// done. It is the work-stealing-pool surrogate §5 calls for: independent
// element-wise transforms over equal-length sequences.
func Parallelize(nbIterations int, f func(start, end int)) {
	nbTasks := runtime.GOMAXPROCS(0)
	if nbTasks > nbIterations {
		nbTasks = nbIterations
	}
	if nbTasks <= 1 {
		f(0, nbIterations)
		return
	}

	chunkSize := (nbIterations + nbTasks - 1) / nbTasks
	done := make(chan struct{}, nbTasks)
	started := 0
	for start := 0; start < nbIterations; start += chunkSize {
		end := start + chunkSize
		if end > nbIterations {
			end = nbIterations
		}
		started++
		go func(start, end int) {
			f(start, end)
			done <- struct{}{}
		}(start, end)
	}
	for i := 0; i < started; i++ {
		<-done
	}
}
