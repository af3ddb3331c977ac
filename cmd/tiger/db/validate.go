package db

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"golang.org/x/sync/errgroup"

	"tiger-tools/cmd/tiger/script"
)

// DefaultWorkers is the number of physical cores, or logical cores if that
// cannot be read.
func DefaultWorkers() int {
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

type job struct {
	loc script.Loc
	run func()
}

func compareLoc(a, b script.Loc) int {
	return cmp.Or(cmp.Compare(a.File, b.File), cmp.Compare(a.Line, b.Line), cmp.Compare(a.Column, b.Column))
}

// jobs lists every definition to validate, in file order. Each one is
// independent of the others except through the macro caches.
func (d *Database) jobs() []job {
	var out []job
	for _, st := range d.triggers {
		out = append(out, job{st.Key.Loc, func() { st.validateDefinition(d) }})
	}
	for _, se := range d.effects {
		out = append(out, job{se.Key.Loc, func() { se.validateDefinition(d) }})
	}
	for _, m := range d.modifiers {
		out = append(out, job{m.Key.Loc, func() { m.validateDefinition(d) }})
	}
	for _, sv := range d.values {
		out = append(out, job{sv.Key.Loc, func() { sv.validateDefinition(d) }})
	}
	for _, e := range d.events {
		out = append(out, job{e.Key.Loc, func() { e.Validate(d) }})
	}
	slices.SortFunc(out, func(a, b job) int { return compareLoc(a.loc, b.loc) })
	return out
}

// Validate checks every loaded definition using up to workers goroutines,
// or DefaultWorkers if workers is not positive. Findings go to the sink;
// the error is only for cancellation.
func (d *Database) Validate(ctx context.Context, workers int) error {
	d.mu.RLock()
	loaded := d.loaded
	d.mu.RUnlock()
	if !loaded {
		return ErrNotLoaded
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	start := time.Now()
	jobs := d.jobs()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	scheduled := 0
	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		scheduled++
		g.Go(func() error {
			j.run()
			return nil
		})
	}
	_ = g.Wait()
	d.logger.Info("validation done", "items", scheduled, "of", len(jobs), "workers", workers,
		"duration", time.Since(start))
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("phase=validate: %w", err)
	}
	return nil
}
