// Package grid provides the value types shared by grid-based search callers:
// 2D and 3D points, compass directions, neighbor enumeration, and a
// rectangular rune Grid parsed from puzzle text.
//
// What:
//
//   - Point / Point3 with vector arithmetic and Manhattan distance.
//   - Direction (N, NE, E, SE, S, SW, W, NW) with unit deltas and
//     90° rotation: Left, Right, Turn(n), Opposite.
//   - Neighbor sets for four- or eight-connectivity (Conn4 or Conn8),
//     returned as unordered sets because callers filter them against
//     their own legality rules.
//   - Grid wraps rectangular text input and answers bounds, lookup and
//     connected-region queries.
//
// Coordinates:
//
//	X grows to the East (right), Y grows to the South (down), matching the
//	row/column order of text input. North is therefore Point{0, -1}.
//
// Complexity:
//
//   - Point and Direction operations: O(1), no allocation except the
//     neighbor sets.
//   - Parse: O(W×H) time and memory.
//   - Regions: O(W×H×d) time, O(W×H) memory (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadDirection: ParseDirection received an unknown token.
//
// All types are plain values; nothing holds hidden state and everything is
// safe for concurrent use once built.
package grid
