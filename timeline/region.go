// SPDX-License-Identifier: EPL-2.0

package timeline

// Region is a selected interval in pixel space. Start <= End always
// holds for regions stored in a RegionSet. Regions are compared by
// pointer identity, not by value.
type Region struct {
	Start float64
	End   float64
}

// RegionSet is an ordered collection of non-overlapping regions,
// sorted ascending by Start. Adjacent regions never touch: for every
// pair of neighbours, prev.End < next.Start.
//
// RegionSet is not safe for concurrent use; it is expected to be
// owned by a single controller.
type RegionSet struct {
	regions []*Region
}

func NewRegionSet() *RegionSet {
	return &RegionSet{}
}

// Len returns the number of regions in the set.
func (rs *RegionSet) Len() int { return len(rs.regions) }

// Regions returns the regions in ascending order. The returned slice
// is a copy; the regions themselves are shared.
func (rs *RegionSet) Regions() []*Region {
	out := make([]*Region, len(rs.regions))
	copy(out, rs.regions)
	return out
}

// AddRegion inserts the interval [start, end] into the set, trimming
// it against its neighbours so that the set stays sorted and
// non-overlapping: the new region begins no earlier than one pixel
// past the previous region's end, and ends no later than one pixel
// before the next region's start.
//
// If trimming leaves nothing (for example, the interval is fully
// covered by an existing region), nothing is inserted and AddRegion
// returns nil. A reversed interval (start > end) is rejected the same
// way. Otherwise AddRegion returns the stored region.
func (rs *RegionSet) AddRegion(start, end float64) *Region {
	if start > end {
		return nil
	}

	// Find the first region whose start strictly exceeds the new
	// start; the region before it bounds the trim on the left.
	idx := len(rs.regions)
	for i, r := range rs.regions {
		if r.Start > start {
			idx = i
			break
		}
	}

	effStart := start
	if idx > 0 {
		if prevEnd := rs.regions[idx-1].End; prevEnd+1 > effStart {
			effStart = prevEnd + 1
		}
	}

	effEnd := end
	if idx < len(rs.regions) && end >= rs.regions[idx].Start {
		effEnd = rs.regions[idx].Start - 1
	}

	if effStart > effEnd {
		// Trimmed away entirely.
		return nil
	}

	region := &Region{Start: effStart, End: effEnd}
	rs.regions = append(rs.regions, nil)
	copy(rs.regions[idx+1:], rs.regions[idx:])
	rs.regions[idx] = region

	return region
}

// FindRegionContaining returns the region with Start <= x <= End, or
// nil if no region contains x. Regions never overlap, so at most one
// region matches.
func (rs *RegionSet) FindRegionContaining(x float64) *Region {
	for _, r := range rs.regions {
		if r.Start <= x && x <= r.End {
			return r
		}
	}
	return nil
}

// RemoveRegion removes the given region from the set. The match is by
// pointer identity; removing a region not in the set is a no-op.
func (rs *RegionSet) RemoveRegion(region *Region) {
	for i, r := range rs.regions {
		if r == region {
			rs.regions = append(rs.regions[:i], rs.regions[i+1:]...)
			return
		}
	}
}
