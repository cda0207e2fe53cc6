/*
Copyright © 2017 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package proj

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrPointAtInfinity is wrapped by a DomainError when a point projects
	// to infinity.
	ErrPointAtInfinity = errors.New("point projects to infinity")

	// ErrOutOfRange is wrapped by a DomainError when an input coordinate is
	// outside of the domain of an operation.
	ErrOutOfRange = errors.New("coordinate out of range")
)

// ConfigError is returned when a projection definition is malformed or
// contradictory.
type ConfigError struct {
	Projection string
	Msg        string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("proj: invalid %s configuration: %s", e.Projection, e.Msg)
}

// ConvergenceError is returned when an iterative solver exceeds its
// iteration budget.
type ConvergenceError struct {
	Algorithm  string
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("proj: %s did not converge after %d iterations", e.Algorithm, e.Iterations)
}

// DomainError is returned when an input coordinate is outside of the
// valid domain of an operation.
type DomainError struct {
	Op  string
	Err error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("proj: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DomainError) Unwrap() error { return e.Err }

// Cause implements the github.com/pkg/errors causer interface.
func (e *DomainError) Cause() error { return e.Err }

// UnsupportedError is returned for features that are recognized but not
// implemented, such as grid shift datum transformations.
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("proj: %s is not supported", e.Feature)
}

func configErr(projection, format string, args ...interface{}) error {
	return &ConfigError{Projection: projection, Msg: fmt.Sprintf(format, args...)}
}

func infinite(op string) error {
	return &DomainError{Op: op, Err: ErrPointAtInfinity}
}

func outOfRange(op, format string, args ...interface{}) error {
	return &DomainError{Op: op, Err: errors.Wrapf(ErrOutOfRange, format, args...)}
}

func noConvergence(algorithm string, iterations int) error {
	return &ConvergenceError{Algorithm: algorithm, Iterations: iterations}
}
