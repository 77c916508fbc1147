package galois

// MinPoly is one row of a minimal-polynomial table: a conjugacy-class
// representative, the powers in its class, and the class's minimal
// polynomial over GF(2).
type MinPoly struct {
	Rep        int
	Conjugates []int
	Poly       Poly
}

// Conjugates returns the Frobenius orbit of e: e, e^2, e^4, ... until the
// orbit closes. The result has at most m entries; the zero element is its
// own single conjugate. The slice is freshly built on every call.
func (e Element) Conjugates() []Element {
	if e.power == PowerZero {
		return []Element{e}
	}
	n := e.field.q - 1
	orbit := []Element{e}
	for p := (2 * e.power) % n; p != e.power; p = (2 * p) % n {
		orbit = append(orbit, Element{field: e.field, power: p})
	}
	return orbit
}

// MinPoly returns the minimal polynomial of e over GF(2): the product of
// (x + alpha^c) over the conjugates c of e, with coefficients reduced
// through the field tables. The reduced coefficients always land in
// GF(2). The zero element has minimal polynomial x.
func (e Element) MinPoly() Poly {
	if e.power == PowerZero {
		return Poly(0b10) // x
	}

	// Coefficients are kept in power representation while multiplying
	// out the linear factors; coeffs[i] is the coefficient of x^i.
	coeffs := []int{0}
	for _, c := range e.Conjugates() {
		next := make([]int, len(coeffs)+1)
		for i := range next {
			next[i] = PowerZero
		}
		for i, a := range coeffs {
			next[i+1] = e.field.addPow(next[i+1], a)
			next[i] = e.field.addPow(next[i], e.field.mulPow(a, c.power))
		}
		coeffs = next
	}

	var p Poly
	for i, c := range coeffs {
		switch c {
		case PowerZero:
		case 0:
			p |= 1 << uint(i)
		default:
			// Unreachable over a correctly built table: the product over a
			// full conjugacy class is fixed by Frobenius.
			panic("galois: minimal polynomial coefficient outside GF(2)")
		}
	}
	return p
}

// MinPolyTable returns one MinPoly row per conjugacy class of the nonzero
// elements, ordered by smallest representative. The table is a pure
// function of the field; each call rebuilds it.
func (f *Field) MinPolyTable() []MinPoly {
	seen := make([]bool, f.q-1)
	rows := make([]MinPoly, 0, f.q/f.m+1)
	for i := 0; i < f.q-1; i++ {
		if seen[i] {
			continue
		}
		e := Element{field: f, power: i}
		orbit := e.Conjugates()
		powers := make([]int, len(orbit))
		for j, c := range orbit {
			powers[j] = c.power
			seen[c.power] = true
		}
		rows = append(rows, MinPoly{Rep: i, Conjugates: powers, Poly: e.MinPoly()})
	}
	return rows
}
