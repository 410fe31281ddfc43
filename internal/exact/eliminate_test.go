package exact_test

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/matrixlab/internal/exact"
)

var _ = Describe("RREF", func() {
	It("reduces an invertible matrix to the identity", func() {
		m := exact.FromFloats([][]float64{{1, 2}, {3, 4}})
		red, pivots, steps := exact.RREF(m)

		Expect(red.Equal(exact.Identity(2))).To(BeTrue())
		Expect(pivots).To(Equal([]int{0, 1}))
		Expect(len(steps)).To(BeNumerically(">", 2))
		Expect(steps[0].Desc).To(Equal("Initial matrix"))
		Expect(steps[len(steps)-1].Desc).To(Equal("Result: RREF"))
	})

	It("reports pivot columns of a rank-deficient matrix", func() {
		m := exact.FromFloats([][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}})
		red, pivots, _ := exact.RREF(m)

		Expect(pivots).To(Equal([]int{0, 1}))
		// Bottom row must vanish.
		for j := 0; j < 3; j++ {
			Expect(red.At(2, j).Sign()).To(BeZero())
		}
	})

	It("leaves exact fractions in the reduced matrix", func() {
		m := exact.FromFloats([][]float64{{2, 1, 1}})
		red, _, _ := exact.RREF(m)

		Expect(red.At(0, 1).Cmp(big.NewRat(1, 2))).To(BeZero())
	})
})

var _ = Describe("UpperTriangular", func() {
	It("zeroes everything below the diagonal", func() {
		m := exact.FromFloats([][]float64{{2, 1}, {4, 3}})
		tri, steps := exact.UpperTriangular(m)

		Expect(tri.At(1, 0).Sign()).To(BeZero())
		Expect(tri.At(0, 0).Cmp(big.NewRat(2, 1))).To(BeZero())
		Expect(tri.At(1, 1).Cmp(big.NewRat(1, 1))).To(BeZero())
		Expect(steps[len(steps)-1].Desc).To(ContainSubstring("upper triangular"))
	})

	It("swaps rows when the pivot entry is zero", func() {
		m := exact.FromFloats([][]float64{{0, 1}, {2, 3}})
		tri, steps := exact.UpperTriangular(m)

		Expect(tri.At(0, 0).Cmp(big.NewRat(2, 1))).To(BeZero())
		descs := []string{}
		for _, s := range steps {
			descs = append(descs, s.Desc)
		}
		Expect(descs).To(ContainElement(ContainSubstring("Swap row")))
	})
})

var _ = Describe("Determinant", func() {
	It("computes the exact determinant", func() {
		m := exact.FromFloats([][]float64{{1, 2}, {3, 4}})
		det, _, err := exact.Determinant(m)

		Expect(err).NotTo(HaveOccurred())
		Expect(det.Cmp(big.NewRat(-2, 1))).To(BeZero())
	})

	It("returns zero for a singular matrix", func() {
		m := exact.FromFloats([][]float64{{1, 2}, {2, 4}})
		det, _, err := exact.Determinant(m)

		Expect(err).NotTo(HaveOccurred())
		Expect(det.Sign()).To(BeZero())
	})

	It("rejects non-square matrices", func() {
		m := exact.FromFloats([][]float64{{1, 2, 3}, {4, 5, 6}})
		_, _, err := exact.Determinant(m)

		Expect(err).To(MatchError(exact.ErrNonSquare))
	})

	It("accounts for row swaps in the sign", func() {
		m := exact.FromFloats([][]float64{{0, 1}, {1, 0}})
		det, _, err := exact.Determinant(m)

		Expect(err).NotTo(HaveOccurred())
		Expect(det.Cmp(big.NewRat(-1, 1))).To(BeZero())
	})
})

var _ = Describe("Inverse", func() {
	It("inverts via the augmented [A|I] reduction", func() {
		m := exact.FromFloats([][]float64{{4, 7}, {2, 6}})
		inv, steps, err := exact.Inverse(m)

		Expect(err).NotTo(HaveOccurred())
		Expect(steps[0].Desc).To(Equal("Augmented matrix [A|I]"))
		Expect(inv.At(0, 0).Cmp(big.NewRat(3, 5))).To(BeZero())
		Expect(inv.At(0, 1).Cmp(big.NewRat(-7, 10))).To(BeZero())
		Expect(inv.At(1, 0).Cmp(big.NewRat(-1, 5))).To(BeZero())
		Expect(inv.At(1, 1).Cmp(big.NewRat(2, 5))).To(BeZero())
	})

	It("fails with ErrSingular on a zero-determinant matrix", func() {
		m := exact.FromFloats([][]float64{{1, 2}, {2, 4}})
		inv, steps, err := exact.Inverse(m)

		Expect(err).To(MatchError(exact.ErrSingular))
		Expect(inv).To(BeNil())
		Expect(steps[len(steps)-1].Desc).To(ContainSubstring("not invertible"))
	})

	It("rejects non-square matrices", func() {
		m := exact.FromFloats([][]float64{{1, 2, 3}})
		_, _, err := exact.Inverse(m)

		Expect(err).To(MatchError(exact.ErrNonSquare))
	})
})

var _ = Describe("Rank", func() {
	It("is full for an invertible matrix", func() {
		Expect(exact.Rank(exact.FromFloats([][]float64{{1, 2}, {3, 4}}))).To(Equal(2))
	})

	It("drops with duplicate rows", func() {
		m := exact.FromFloats([][]float64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}})
		Expect(exact.Rank(m)).To(Equal(2))
	})
})

var _ = Describe("Independent", func() {
	It("accepts the standard basis", func() {
		ok, pivots := exact.Independent([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
		Expect(ok).To(BeTrue())
		Expect(pivots).To(Equal([]int{0, 1, 2}))
	})

	It("rejects a dependent set and names the pivot vectors", func() {
		ok, pivots := exact.Independent([][]float64{{1, 2}, {2, 4}, {0, 1}})
		Expect(ok).To(BeFalse())
		Expect(pivots).To(Equal([]int{0, 2}))
	})

	It("rejects more vectors than their dimension", func() {
		ok, _ := exact.Independent([][]float64{{1, 0}, {0, 1}, {1, 1}})
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Cramer", func() {
	It("solves a 2x2 system exactly", func() {
		a := exact.FromFloats([][]float64{{2, 1}, {1, 3}})
		b := exact.FromFloats([][]float64{{5}, {10}})
		sol, err := exact.Cramer(a, b)

		Expect(err).NotTo(HaveOccurred())
		Expect(sol.Unique).To(BeTrue())
		Expect(sol.Det.Cmp(big.NewRat(5, 1))).To(BeZero())
		Expect(sol.X[0].Cmp(big.NewRat(1, 1))).To(BeZero())
		Expect(sol.X[1].Cmp(big.NewRat(3, 1))).To(BeZero())
	})

	It("accepts a row-shaped right-hand side", func() {
		a := exact.FromFloats([][]float64{{1, 0}, {0, 1}})
		b := exact.FromFloats([][]float64{{7, -2}})
		sol, err := exact.Cramer(a, b)

		Expect(err).NotTo(HaveOccurred())
		Expect(sol.X[0].Cmp(big.NewRat(7, 1))).To(BeZero())
		Expect(sol.X[1].Cmp(big.NewRat(-2, 1))).To(BeZero())
	})

	It("reports no unique solution when det(A) is zero", func() {
		a := exact.FromFloats([][]float64{{1, 2}, {2, 4}})
		b := exact.FromFloats([][]float64{{1}, {2}})
		sol, err := exact.Cramer(a, b)

		Expect(err).NotTo(HaveOccurred())
		Expect(sol.Unique).To(BeFalse())
		Expect(sol.X).To(BeNil())
	})

	It("rejects mismatched shapes", func() {
		a := exact.FromFloats([][]float64{{1, 2}, {3, 4}})
		b := exact.FromFloats([][]float64{{1}, {2}, {3}})
		_, err := exact.Cramer(a, b)

		Expect(err).To(MatchError(exact.ErrDimensionMismatch))
	})
})
