// Package polyroot provides polynomial root finding and factorisation of real
// polynomials into first- and second-order factors, used for pole/zero
// queries and for splitting transfer functions into sections.
package polyroot

import (
	"cmp"
	"errors"
	"math"
	"math/cmplx"
	"slices"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (all zero, convergence failure, unpaired complex roots).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// realTol is the imaginary magnitude below which a root counts as real.
const realTol = 1e-9

// Roots returns the roots of the real polynomial
//
//	c[0]*x^n + c[1]*x^(n-1) + ... + c[n]
//
// Leading zero coefficients lower the degree. Trailing zero coefficients
// contribute exact roots at zero. Roots whose imaginary part is negligible are
// returned as exact reals.
func Roots(c []float64) ([]complex128, error) {
	first := slices.IndexFunc(c, func(v float64) bool { return v != 0 })
	if first < 0 {
		return nil, ErrDegeneratePolynomial
	}
	c = c[first:]

	zeros := 0
	for len(c) > 1 && c[len(c)-1] == 0 {
		c = c[:len(c)-1]
		zeros++
	}

	roots := make([]complex128, 0, len(c)-1+zeros)
	if len(c) > 1 {
		coeff := make([]complex128, len(c))
		for i, v := range c {
			coeff[i] = complex(v, 0)
		}
		found, err := DurandKerner(coeff)
		if err != nil {
			return nil, err
		}
		for _, r := range found {
			if math.Abs(imag(r)) <= realTol*math.Max(1, cmplx.Abs(r)) {
				r = complex(real(r), 0)
			}
			roots = append(roots, r)
		}
	}
	for range zeros {
		roots = append(roots, 0)
	}
	return roots, nil
}

// Quadratics factors the polynomial in x^-1
//
//	c[0] + c[1]*x^-1 + ... + c[n]*x^-n
//
// as gain * prod_k (1 + q[k][0]*x^-1 + q[k][1]*x^-2). Complex roots are
// combined with their conjugates, real roots are paired in ascending order,
// and an odd real root left over becomes a first-order factor with
// q[k][1] == 0. gain is c[0], which must be non-zero.
func Quadratics(c []float64) (gain float64, q [][2]float64, err error) {
	if len(c) == 0 || c[0] == 0 {
		return 0, nil, ErrDegeneratePolynomial
	}
	// Multiplying through by x^n turns the x^-1 polynomial into c read as
	// descending powers of x with the same roots.
	roots, err := Roots(c)
	if err != nil {
		return 0, nil, err
	}

	pairs, singles, err := PairConjugates(roots)
	if err != nil {
		return 0, nil, err
	}

	q = make([][2]float64, 0, len(pairs)+len(singles))
	for _, p := range pairs {
		q1, q2 := QuadFromRoots(p)
		q = append(q, [2]float64{q1, q2})
	}
	for _, r := range singles {
		q = append(q, [2]float64{-real(r), 0})
	}
	return c[0], q, nil
}

// QuadFromRoots returns (q1, q2) such that
// (1 - r0*x^-1)(1 - r1*x^-1) = 1 + q1*x^-1 + q2*x^-2 for a conjugate or
// real root pair.
func QuadFromRoots(pair [2]complex128) (q1, q2 float64) {
	return -real(pair[0] + pair[1]), real(pair[0] * pair[1])
}

// PairConjugates groups roots into second-order pairs. Complex roots are
// matched with their closest conjugate and validated within ConjugateTol.
// Real roots are sorted and paired neighbour by neighbour; an odd one out is
// returned in singles. Complex pairs come first, ordered by magnitude.
func PairConjugates(roots []complex128) (pairs [][2]complex128, singles []complex128, err error) {
	var cplx []complex128
	var reals []float64
	for _, r := range roots {
		if imag(r) == 0 {
			reals = append(reals, real(r))
			continue
		}
		cplx = append(cplx, r)
	}

	used := make([]bool, len(cplx))
	for i := range cplx {
		if used[i] {
			continue
		}

		root := cplx[i]
		conj := cmplx.Conj(root)
		best := -1
		bestDist := math.MaxFloat64

		for j := range cplx {
			if i == j || used[j] {
				continue
			}

			d := cmplx.Abs(cplx[j] - conj)
			if d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best == -1 || !IsConjugate(root, cplx[best], ConjugateTol) {
			return nil, nil, ErrDegeneratePolynomial
		}

		used[i] = true
		used[best] = true
		pairs = append(pairs, [2]complex128{root, cmplx.Conj(root)})
	}
	slices.SortStableFunc(pairs, func(a, b [2]complex128) int {
		return cmp.Compare(cmplx.Abs(a[0]), cmplx.Abs(b[0]))
	})

	slices.Sort(reals)
	for i := 0; i+1 < len(reals); i += 2 {
		pairs = append(pairs, [2]complex128{complex(reals[i], 0), complex(reals[i+1], 0)})
	}
	if len(reals)%2 == 1 {
		singles = append(singles, complex(reals[len(reals)-1], 0))
	}
	return pairs, singles, nil
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
