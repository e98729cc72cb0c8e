package raster

import "math"

// sortingTriangle is what the bucket sorts; it only refers to a Triangle by index so the bins stay small.
type sortingTriangle struct {
	triangleID int
	depth      float32
}

type sortingTriangleBin struct {
	triangles []sortingTriangle
}

// sortingTriangleBucket orders triangles back-to-front by dropping them into evenly spaced depth bins. Triangles
// in the same bin keep the order they were added in, which is the order the scene rendered them.
type sortingTriangleBucket struct {
	bins     []sortingTriangleBin
	unset    []sortingTriangle
	minDepth float32
	maxDepth float32
	ranged   bool // Whether any finite depth has been seen since Clear
}

func newSortingTriangleBucket(binCount int) *sortingTriangleBucket {
	if binCount < 1 {
		binCount = 1
	}
	bucket := &sortingTriangleBucket{
		bins: make([]sortingTriangleBin, binCount),
	}
	bucket.Clear()
	return bucket
}

// AddTriangle queues a triangle for sorting. Depths that aren't finite don't widen the bucket's range; Sort
// files them in the farthest bin.
func (s *sortingTriangleBucket) AddTriangle(triID int, depth float32) {
	if finite(depth) {
		if !s.ranged || depth < s.minDepth {
			s.minDepth = depth
		}
		if !s.ranged || depth > s.maxDepth {
			s.maxDepth = depth
		}
		s.ranged = true
	}
	s.unset = append(s.unset, sortingTriangle{triangleID: triID, depth: depth})
}

func (s *sortingTriangleBucket) Sort() {

	binCount := len(s.bins)
	rangeDiff := s.maxDepth - s.minDepth

	if rangeDiff == 0 {
		rangeDiff = 0.001
	}

	for _, tri := range s.unset {

		targetBin := 0

		if !finite(tri.depth) {
			targetBin = binCount - 1
		} else if binCount > 1 {
			depth := (tri.depth - s.minDepth) / rangeDiff * float32(binCount)
			targetBin = int(clamp(depth, 0, float32(binCount-1)))
		}

		s.bins[targetBin].triangles = append(s.bins[targetBin].triangles, tri)

	}

	s.unset = s.unset[:0]

}

func (s *sortingTriangleBucket) Clear() {
	for i := range s.bins {
		s.bins[i].triangles = s.bins[i].triangles[:0]
	}
	s.unset = s.unset[:0]
	s.minDepth = 0
	s.maxDepth = 0
	s.ranged = false
}

// ForEach walks the sorted triangles from the farthest bin to the nearest.
func (s *sortingTriangleBucket) ForEach(forEach func(triIndex, triID int)) {

	triIndex := 0

	for binIndex := len(s.bins) - 1; binIndex >= 0; binIndex-- {
		for _, tri := range s.bins[binIndex].triangles {
			forEach(triIndex, tri.triangleID)
			triIndex++
		}
	}

}

func (s *sortingTriangleBucket) IsEmpty() bool {
	return len(s.unset) == 0
}

func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func finite(value float32) bool {
	return !math.IsNaN(float64(value)) && !math.IsInf(float64(value), 0)
}
