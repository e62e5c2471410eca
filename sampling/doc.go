// Package sampling places points over a Pattern domain under three
// strategies: uniform-without-replacement, Poisson-disc accept/reject,
// and Mitchell best-candidate.
//
// Every randomised entry point takes an explicit *rand.Rand; a nil one
// falls back to forma's deterministic zero-seed stream (see randutil).
package sampling
