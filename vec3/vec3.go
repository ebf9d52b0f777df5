package vec3

import "math"

// Vector3 is a displacement in 3D Cartesian space.
type Vector3 struct {
	X, Y, Z float64
}

// Point3 is a position in 3D Cartesian space. It is distinguished from
// Vector3 only by convention — the two share no behavior that depends on
// which one is "absolute" — so that call sites read naturally (atom
// positions are Point3, displacements and lattice vectors are Vector3).
type Point3 struct {
	X, Y, Z float64
}

// Zero is the additive identity Vector3.
var Zero = Vector3{}

// Add returns v+w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v-w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Dot returns the scalar product v.w.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector product v x w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// LengthSquared returns |v|^2, avoiding the sqrt of Length.
func (v Vector3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the Euclidean norm of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// ApproxEqual reports whether v and w agree within eps on every component.
func (v Vector3) ApproxEqual(w Vector3, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps && math.Abs(v.Z-w.Z) <= eps
}

// IsApproxZero reports whether v is within eps of the zero vector.
func (v Vector3) IsApproxZero(eps float64) bool {
	return v.ApproxEqual(Zero, eps)
}

// Sub returns the displacement from q to p (p-q).
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Add translates p by v.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// AsVector3 reinterprets p's coordinates as a displacement from the origin.
func (p Point3) AsVector3() Vector3 {
	return Vector3{p.X, p.Y, p.Z}
}
