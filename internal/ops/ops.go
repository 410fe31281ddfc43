// Package ops maps operation names to runnable matrix operations and
// produces a uniform result shape for the CLI and TUI: an output matrix
// and/or scalar, pivot columns where relevant, and a step-by-step trace.
package ops

import (
	"fmt"

	"github.com/san-kum/matrixlab/internal/exact"
	"github.com/san-kum/matrixlab/internal/format"
	"github.com/san-kum/matrixlab/internal/matrix"
)

// Step is one entry of an operation trace.
type Step struct {
	Desc     string
	Snapshot [][]float64
}

// Result is the uniform outcome of any operation.
type Result struct {
	Matrix [][]float64 // nil when the operation yields no matrix
	Scalar string      // formatted scalar (determinant, verdict), "" if none
	Pivots []int       // pivot indices for rref / indep
	Note   string      // extra context, e.g. "no unique solution"
	Steps  []Step
}

type runner func(a, b [][]float64, prec int) (*Result, error)

// Op describes a registered operation.
type Op struct {
	Name  string
	Info  string
	Arity int // matrix inputs: 1 or 2
	run   runner
}

// Registry holds the available operations in menu order.
type Registry struct {
	ops   map[string]Op
	order []string
}

func NewRegistry() *Registry {
	r := &Registry{ops: make(map[string]Op)}

	r.register(Op{Name: "add", Info: "matrix addition A + B", Arity: 2, run: runAdd})
	r.register(Op{Name: "sub", Info: "matrix subtraction A - B", Arity: 2, run: runSub})
	r.register(Op{Name: "mul", Info: "matrix product A x B", Arity: 2, run: runMul})
	r.register(Op{Name: "transpose", Info: "transpose A", Arity: 1, run: runTranspose})
	r.register(Op{Name: "inverse", Info: "inverse by [A|I] reduction", Arity: 1, run: runInverse})
	r.register(Op{Name: "det", Info: "determinant", Arity: 1, run: runDet})
	r.register(Op{Name: "rref", Info: "reduced row-echelon form", Arity: 1, run: runRREF})
	r.register(Op{Name: "triu", Info: "upper triangularization", Arity: 1, run: runTriu})
	r.register(Op{Name: "cramer", Info: "solve Ax = b by Cramer's rule", Arity: 2, run: runCramer})
	r.register(Op{Name: "indep", Info: "column-vector independence", Arity: 1, run: runIndep})

	return r
}

func (r *Registry) register(op Op) {
	r.ops[op.Name] = op
	r.order = append(r.order, op.Name)
}

// Get returns the named operation.
func (r *Registry) Get(name string) (Op, error) {
	op, ok := r.ops[name]
	if !ok {
		return Op{}, fmt.Errorf("unknown operation: %s", name)
	}
	return op, nil
}

// List returns operation names in registration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Run executes the named operation. b is ignored for unary operations.
func (r *Registry) Run(name string, a, b [][]float64, prec int) (*Result, error) {
	op, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return op.run(a, b, prec)
}

func runAdd(a, b [][]float64, prec int) (*Result, error) {
	out, err := matrix.Add(a, b)
	if err != nil {
		return nil, err
	}
	return &Result{Matrix: out, Steps: elementwiseSteps(a, b, out, "+", prec)}, nil
}

func runSub(a, b [][]float64, prec int) (*Result, error) {
	out, err := matrix.Sub(a, b)
	if err != nil {
		return nil, err
	}
	return &Result{Matrix: out, Steps: elementwiseSteps(a, b, out, "-", prec)}, nil
}

func runMul(a, b [][]float64, prec int) (*Result, error) {
	out, err := matrix.Mul(a, b)
	if err != nil {
		return nil, err
	}
	return &Result{Matrix: out, Steps: productSteps(a, b, out, prec)}, nil
}

func runTranspose(a, _ [][]float64, prec int) (*Result, error) {
	out := matrix.Transpose(a)
	steps := []Step{
		{Desc: "Original matrix A", Snapshot: a},
		{Desc: "Transpose: rows become columns", Snapshot: out},
	}
	return &Result{Matrix: out, Steps: steps}, nil
}

func runInverse(a, _ [][]float64, prec int) (*Result, error) {
	out, err := matrix.Inverse(a)
	if err != nil {
		return nil, err
	}
	_, trace, err := exact.Inverse(exact.FromFloats(a))
	if err != nil {
		// The numeric path accepted what exact arithmetic rejects; trust exact.
		return nil, err
	}
	return &Result{Matrix: out, Steps: convertSteps(trace)}, nil
}

func runDet(a, _ [][]float64, prec int) (*Result, error) {
	d, err := matrix.Det(a)
	if err != nil {
		return nil, err
	}
	_, trace, err := exact.Determinant(exact.FromFloats(a))
	if err != nil {
		return nil, err
	}
	return &Result{Scalar: format.Num(d, prec), Steps: convertSteps(trace)}, nil
}

func runRREF(a, _ [][]float64, prec int) (*Result, error) {
	red, pivots, trace := exact.RREF(exact.FromFloats(a))
	return &Result{Matrix: red.Float64s(), Pivots: pivots, Steps: convertSteps(trace)}, nil
}

func runTriu(a, _ [][]float64, prec int) (*Result, error) {
	tri, trace := exact.UpperTriangular(exact.FromFloats(a))
	return &Result{Matrix: tri.Float64s(), Steps: convertSteps(trace)}, nil
}

func runCramer(a, b [][]float64, prec int) (*Result, error) {
	sol, err := exact.Cramer(exact.FromFloats(a), exact.FromFloats(b))
	if err != nil {
		return nil, err
	}
	res := &Result{Scalar: sol.Det.RatString(), Steps: convertSteps(sol.Steps)}
	if !sol.Unique {
		res.Note = "det(A) = 0: no unique solution"
		return res, nil
	}
	x := make([][]float64, len(sol.X))
	for i, xi := range sol.X {
		v, _ := xi.Float64()
		x[i] = []float64{v}
	}
	res.Matrix = x
	return res, nil
}

func runIndep(a, _ [][]float64, prec int) (*Result, error) {
	ok, pivots := exact.Independent(a)
	res := &Result{Pivots: pivots}
	if ok {
		res.Scalar = "independent"
	} else {
		res.Scalar = "dependent"
		res.Note = fmt.Sprintf("%d of %d vectors are independent", len(pivots), len(a))
	}
	return res, nil
}

func convertSteps(trace []exact.Step) []Step {
	out := make([]Step, len(trace))
	for i, s := range trace {
		out[i] = Step{Desc: s.Desc, Snapshot: s.Snapshot.Float64s()}
	}
	return out
}
