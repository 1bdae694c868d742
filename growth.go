package containers

const (
	// minCapacity is the first allocation made for an empty container.
	minCapacity = 16

	// linearGrowthThreshold is the capacity above which growth becomes additive.
	linearGrowthThreshold = 8192

	// linearGrowthStep is the additive increment used above the threshold.
	linearGrowthStep = 8192
)

// NextCapacity returns the capacity a container grows to when it is full.
//
// Small and medium containers double, which keeps appends amortized O(1).
// Past 8192 elements growth is additive to bound over-allocation.
// Array, Text, Records and Table all grow through this function.
func NextCapacity(current int) int {
	switch {
	case current <= 0:
		return minCapacity
	case current > linearGrowthThreshold:
		return current + linearGrowthStep
	default:
		return current * 2
	}
}

// normalizeCapacity maps an explicit resize to zero onto the first allocation size.
func normalizeCapacity(c int) int {
	if c == 0 {
		return minCapacity
	}
	return c
}
