// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package field

import "fmt"

type config struct {
	checkPrimality  bool
	primalityRounds int
}

// Option configures field construction. See NewField.
type Option func(*config) error

// WithoutPrimalityCheck skips the primality check when building a field.
//
// Use it when the modulus is a known prime and construction cost matters.
// With a composite modulus the result is a ring, not a field: nonzero
// elements sharing a factor with the modulus have no inverse, and division
// fails with ErrNotInvertible.
func WithoutPrimalityCheck() Option {
	return func(c *config) error {
		c.checkPrimality = false
		return nil
	}
}

// WithPrimalityRounds sets the number of Miller-Rabin rounds used by the
// primality check. The default is 20.
func WithPrimalityRounds(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("primality rounds must be positive, got %d", n)
		}
		c.primalityRounds = n
		return nil
	}
}

func newConfig(opts ...Option) (config, error) {
	c := config{
		checkPrimality:  true,
		primalityRounds: 20,
	}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return config{}, err
		}
	}
	return c, nil
}
