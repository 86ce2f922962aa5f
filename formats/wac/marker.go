// SPDX-License-Identifier: EPL-2.0

package wac

import "fmt"

// Coordinate is a GPS position decoded from a block header.
//
// Per the WAC format documentation, positive values correspond to North
// latitude and West longitude. The pairing of North with West is unusual
// but is the documented on-disk contract, so it is preserved here rather
// than silently flipped.
type Coordinate struct {
	Latitude  float64 // degrees, positive = North
	Longitude float64 // degrees, positive = West
}

// Tag is a recording tag embedded in a block header, corresponding to an
// EM3/EM3+ button press. Zero means no tag; values 1-4 are buttons A-D.
type Tag uint8

// TagNone indicates a block without a tag.
const TagNone Tag = 0

func (t Tag) String() string {
	if t == TagNone {
		return "none"
	}
	if t >= 1 && t <= 4 {
		return string(rune('A' + t - 1))
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// Marker records metadata found in a block header, pinned to the
// per-channel sample offset at which that block starts. Markers never
// affect sample decoding; callers are free to ignore them.
type Marker struct {
	Sample uint32 // per-channel sample offset of the block start
	GPS    *Coordinate
	Tag    Tag
}
