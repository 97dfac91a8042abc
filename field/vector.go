// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package field

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Vector is a slice of elements of one field.
type Vector []Element

// parallelThreshold is the vector length above which element-wise operations
// are split across goroutines.
const parallelThreshold = 512

// Add returns the element-wise sum v + w.
func (v Vector) Add(w Vector) (Vector, error) {
	if _, err := v.sameField(w); err != nil {
		return nil, err
	}
	res := make(Vector, len(v))
	parallelRange(len(v), func(start, end int) {
		for i := start; i < end; i++ {
			res[i] = v[i].Add(w[i])
		}
	})
	return res, nil
}

// Sub returns the element-wise difference v - w.
func (v Vector) Sub(w Vector) (Vector, error) {
	if _, err := v.sameField(w); err != nil {
		return nil, err
	}
	res := make(Vector, len(v))
	parallelRange(len(v), func(start, end int) {
		for i := start; i < end; i++ {
			res[i] = v[i].Sub(w[i])
		}
	})
	return res, nil
}

// ScalarMul returns the vector scaled by e.
func (v Vector) ScalarMul(e Element) (Vector, error) {
	if err := v.oneField(e.Field()); err != nil {
		return nil, err
	}
	res := make(Vector, len(v))
	parallelRange(len(v), func(start, end int) {
		for i := start; i < end; i++ {
			res[i] = v[i].Mul(e)
		}
	})
	return res, nil
}

// Sum returns the sum of all entries of v. The sum of an empty vector over
// field f is f.Zero(); the field must then be supplied explicitly, so Sum
// takes the ambient field as argument and checks v against it.
func (v Vector) Sum(f *Field) (Element, error) {
	if err := v.oneField(f); err != nil {
		return Element{}, err
	}
	return v.foldChunks(f, func(acc, e Element) Element { return acc.Add(e) })
}

// InnerProduct returns sum_i v[i]*w[i] over the field f.
func (v Vector) InnerProduct(w Vector, f *Field) (Element, error) {
	if len(v) != len(w) {
		return Element{}, fmt.Errorf("vector size mismatch: %d and %d", len(v), len(w))
	}
	if err := v.oneField(f); err != nil {
		return Element{}, err
	}
	if err := w.oneField(f); err != nil {
		return Element{}, err
	}

	products := make(Vector, len(v))
	parallelRange(len(v), func(start, end int) {
		for i := start; i < end; i++ {
			products[i] = v[i].Mul(w[i])
		}
	})
	return products.foldChunks(f, func(acc, e Element) Element { return acc.Add(e) })
}

// foldChunks reduces v with op, in parallel chunks for long vectors. op must
// be associative and commutative with identity f.Zero().
func (v Vector) foldChunks(f *Field, op func(Element, Element) Element) (Element, error) {
	if len(v) < parallelThreshold {
		acc := f.Zero()
		for _, e := range v {
			acc = op(acc, e)
		}
		return acc, nil
	}

	n := runtime.NumCPU()
	partials := make([]Element, n)
	var g errgroup.Group
	chunk := (len(v) + n - 1) / n
	for k := 0; k < n; k++ {
		start := k * chunk
		end := min(start+chunk, len(v))
		g.Go(func() error {
			acc := f.Zero()
			for i := start; i < end; i++ {
				acc = op(acc, v[i])
			}
			partials[k] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Element{}, err
	}

	acc := f.Zero()
	for _, p := range partials {
		acc = op(acc, p)
	}
	return acc, nil
}

// parallelRange runs body over [0, n) split across goroutines when n is
// large enough to amortize the scheduling cost.
func parallelRange(n int, body func(start, end int)) {
	if n < parallelThreshold {
		body(0, n)
		return
	}
	var g errgroup.Group
	workers := runtime.NumCPU()
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			body(start, end)
			return nil
		})
	}
	_ = g.Wait()
}

// sameField checks that v and w have the same length and that every entry
// belongs to a single common field, which it returns. Empty vectors are
// compatible with everything.
func (v Vector) sameField(w Vector) (*Field, error) {
	if len(v) != len(w) {
		return nil, fmt.Errorf("vector size mismatch: %d and %d", len(v), len(w))
	}
	if len(v) == 0 {
		return nil, nil
	}
	f := v[0].Field()
	if err := v.oneField(f); err != nil {
		return nil, err
	}
	if err := w.oneField(f); err != nil {
		return nil, err
	}
	return f, nil
}

// oneField checks that every entry of v belongs to f.
func (v Vector) oneField(f *Field) error {
	for i, e := range v {
		if !f.Equal(e.Field()) {
			return fmt.Errorf("%w: entry %d is in %s, expected %s", ErrIncompatibleModulus, i, e.Field(), f)
		}
	}
	return nil
}
