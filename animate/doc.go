// Package animate turns search output into an ordered list of reveal events
// a shell can play back.
//
// An Event pairs a cell with a delay measured from the moment playback starts.
// The package never sleeps and never reads a clock: realizing the delays is the
// caller's job, which keeps scheduling deterministic and testable.
//
// Policies:
//
//   - PolicyIndex: the k-th path cell after start (1-indexed) is revealed at
//     k × unit. Used for shortest-path strategies.
//   - PolicyCoordinateSum: every explored cell is revealed at
//     (row + col) × unit, sweeping a diagonal wavefront from the top-left.
//     Used for exploratory strategies to show how much ground they covered.
//
// Delays in every returned slice are non-negative and non-decreasing.
package animate
