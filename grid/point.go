package grid

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/constraints"
)

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p multiplied by k on both axes.
func (p Point) Scale(k int) Point {
	return Point{p.X * k, p.Y * k}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Move returns the point one step from p in direction d.
func (p Point) Move(d Direction) Point {
	return p.Add(d.Delta())
}

// Neighbors returns the set of points adjacent to p under conn.
// Complexity: O(d), d = 4 or 8.
func (p Point) Neighbors(conn Connectivity) mapset.Set[Point] {
	dirs := Cardinals()
	if conn == Conn8 {
		dirs = Compass()
	}
	set := mapset.New[Point]()
	for _, d := range dirs {
		set.Put(p.Move(d))
	}
	return set
}

// Neighbors4 returns the four orthogonal neighbors of p.
func (p Point) Neighbors4() mapset.Set[Point] {
	return p.Neighbors(Conn4)
}

// Neighbors8 returns the eight orthogonal and diagonal neighbors of p.
func (p Point) Neighbors8() mapset.Set[Point] {
	return p.Neighbors(Conn8)
}

// String formats p as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns p + q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p multiplied by k on every axis.
func (p Point3) Scale(k int) Point3 {
	return Point3{p.X * k, p.Y * k, p.Z * k}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point3) Manhattan(q Point3) int {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y) + Abs(p.Z-q.Z)
}

// Neighbors6 returns the six face-adjacent neighbors of p.
func (p Point3) Neighbors6() mapset.Set[Point3] {
	set := mapset.New[Point3]()
	for _, d := range [6]Point3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}} {
		set.Put(p.Add(d))
	}
	return set
}

// String formats p as "x,y,z".
func (p Point3) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}
