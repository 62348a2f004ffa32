package curve

// Add returns p+q using López–Dahab projective addition, dispatching to
// the cheaper mixed-coordinate formula whenever q is already affine.
func Add(p, q Point) Point {
	if p.IsIdentity() {
		return q
	}
	if q.IsIdentity() {
		return p
	}
	if p.Neg().ProjectivelyEqual(q) {
		return Identity
	}
	if p.ProjectivelyEqual(q) {
		return Double(p)
	}

	x1, y1, z1 := p.X, p.Y, p.Z
	x2, y2, z2 := q.X, q.Y, q.Z

	if q.IsAffine() {
		a := y1.Add(y2.Mul(z1.Square()))
		b := x1.Add(x2.Mul(z1))
		c := b.Mul(z1)
		z3 := c.Square()
		d := x2.Mul(z3)
		x3 := a.Square().Add(c.Mul(a.Add(b.Square()).Add(A2.Mul(c))))
		y3 := d.Add(x3).Mul(a.Mul(c).Add(z3)).Add(y2.Add(x2).Mul(z3.Square()))
		return Point{X: x3, Y: y3, Z: z3}
	}

	a := x1.Mul(z2)
	b := x2.Mul(z1)
	c := a.Square()
	d := b.Square()
	e := a.Add(b)
	f := c.Add(d)
	g := y1.Mul(z2.Square())
	h := y2.Mul(z1.Square())
	i := g.Add(h)
	j := i.Mul(e)
	z3 := f.Mul(z1).Mul(z2)
	x3 := a.Mul(h.Add(d)).Add(b.Mul(c.Add(g)))
	y3 := a.Mul(j).Add(f.Mul(g)).Mul(f).Add(j.Add(z3).Mul(x3))
	return Point{X: x3, Y: y3, Z: z3}
}

// Double returns p+p.
func Double(p Point) Point {
	if p.IsIdentity() {
		return Identity
	}
	x1, y1, z1 := p.X, p.Y, p.Z
	a := z1.Square()
	c := x1.Square()
	b := A6.Mul(a.Square())
	z3 := a.Mul(c)
	x3 := c.Square().Add(b)
	y3 := y1.Square().Add(A2.Mul(z3)).Add(b).Mul(x3).Add(z3.Mul(b))
	return Point{X: x3, Y: y3, Z: z3}
}
