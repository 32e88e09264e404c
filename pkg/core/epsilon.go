package core

const (
	// Eps is the geometric offset used to push child and shadow rays
	// off a surface and avoid self-intersection
	Eps float32 = 1e-3

	// EpsCmp is the tolerance for early-exit float comparisons
	EpsCmp float32 = 1e-4
)
