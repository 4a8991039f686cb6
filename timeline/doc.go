// SPDX-License-Identifier: EPL-2.0

// Package timeline maps between waveform display coordinates and
// playback time, and tracks the user's selected regions.
//
// # Coordinate Mapping
//
// A Mapper is built from the display width in pixels and the total
// audio duration in seconds:
//
//	mapper, err := timeline.NewMapper(800, 12.5)
//	t := mapper.PixelToTime(400) // 6.25
//	x := mapper.TimeToPixel(t)   // 400
//
// PixelToTime and TimeToPixel are exact inverses up to floating-point
// rounding.
//
// # Regions
//
// A RegionSet holds the selected intervals, in pixel space, sorted
// ascending and pairwise non-overlapping. Inserting a range that
// collides with existing regions trims it against its neighbours
// instead of merging:
//
//	rs := timeline.NewRegionSet()
//	rs.AddRegion(10, 20)
//	rs.AddRegion(15, 25) // stored as [21, 25]
//
// A range trimmed down to nothing is dropped and AddRegion returns
// nil. Regions are identified by pointer, so RemoveRegion removes
// exactly the region previously returned by AddRegion or
// FindRegionContaining.
package timeline
