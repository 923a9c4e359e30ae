/*
Copyright © 2024 the ImpactoSocial authors.
This file is part of ImpactoSocial.

ImpactoSocial is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

ImpactoSocial is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with ImpactoSocial.  If not, see <http://www.gnu.org/licenses/>.
*/

package impacto

import (
	"context"
	"runtime"
)

// Scheduler is the engine's single cooperative suspension point. The
// intersection scan calls Yield between batches so the host (a UI event
// loop, a request handler, a task queue) can run; no other stage yields.
// Yield returns a non-nil error to abort the run, normally ctx.Err() after
// cancellation.
type Scheduler interface {
	Yield(ctx context.Context) error
}

// NopScheduler never suspends. It still honors context cancellation.
type NopScheduler struct{}

// Yield implements Scheduler.
func (NopScheduler) Yield(ctx context.Context) error {
	return ctx.Err()
}

// GoschedScheduler yields the processor to other goroutines between
// batches.
type GoschedScheduler struct{}

// Yield implements Scheduler.
func (GoschedScheduler) Yield(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runtime.Gosched()
	return nil
}

// FuncScheduler adapts a plain function to the Scheduler interface.
type FuncScheduler func(ctx context.Context) error

// Yield implements Scheduler.
func (f FuncScheduler) Yield(ctx context.Context) error {
	return f(ctx)
}

// ProgressFunc receives engine progress as a percentage (monotonically
// non-decreasing within a run) and a human-readable status message. A nil
// ProgressFunc discards progress. Callers must not assume a final call at
// 100% on the failure path.
type ProgressFunc func(percent int, message string)

// span remaps progress percentages onto [lo, hi], so that stage-local
// progress composes into run-wide progress.
func (p ProgressFunc) span(lo, hi int) ProgressFunc {
	if p == nil {
		return nil
	}
	return func(percent int, message string) {
		p(lo+(hi-lo)*percent/100, message)
	}
}
