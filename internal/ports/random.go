package ports

// RandomSource supplies the randomness behind the simulation
// This is a PORT - adapters (seeded, fixed sequence) will implement it
type RandomSource interface {
	// Float64 returns a uniform value in [0, 1).
	// Implementations must be safe for concurrent use.
	Float64() float64
}
