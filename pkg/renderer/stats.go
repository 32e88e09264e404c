package renderer

// RenderStats contains counters for one call to Trace
type RenderStats struct {
	TotalPixels int // pixels in the image plane
	PrimaryRays int // primary rays cast
	Hits        int // primary rays that hit an object
}

// merge folds the counters of another stats value into this one
func (rs *RenderStats) merge(other RenderStats) {
	rs.PrimaryRays += other.PrimaryRays
	rs.Hits += other.Hits
}
