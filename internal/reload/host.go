package reload

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/logger"
)

// Host owns the running module and swaps it on request.
type Host[E any] struct {
	loader  Loader[E]
	module  *Module[E]
	env     *E
	trigger *Trigger
	log     *zap.Logger

	generation int
}

// NewHost loads the first module and runs its Init. trigger may be nil
// when only the module itself asks for reloads.
func NewHost[E any](loader Loader[E], env *E, trigger *Trigger) (*Host[E], error) {
	m, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load module: %w", err)
	}
	if !m.complete() {
		return nil, ErrIncomplete
	}
	h := &Host[E]{
		loader:     loader,
		module:     m,
		env:        env,
		trigger:    trigger,
		log:        logger.Named("reload"),
		generation: 1,
	}
	m.Init(env)
	return h, nil
}

// Generation counts successful loads, starting at 1.
func (h *Host[E]) Generation() int {
	return h.generation
}

// Frame runs one update and performs any reload that was requested. It
// reports false once the module asks to quit.
func (h *Host[E]) Frame() bool {
	status := h.module.Update(h.env)
	if status == StatusQuit {
		return false
	}
	requested := status == StatusReload
	if h.trigger != nil && h.trigger.Consume() {
		requested = true
	}
	if requested {
		// A failed load keeps the current code running.
		_ = h.Reload()
	}
	return true
}

// Run calls Frame until the module quits or ctx is done, then shuts the
// module down.
func (h *Host[E]) Run(ctx context.Context) error {
	defer h.module.Shutdown()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !h.Frame() {
			return nil
		}
	}
}

// Reload loads the newest module and hands it the state record. The new
// code is loaded before the old one lets go of its state, so a broken
// build leaves everything as it was.
func (h *Host[E]) Reload() error {
	next, err := h.loader.Load()
	if err != nil {
		h.log.Error("reload failed; keeping current code", zap.Error(err))
		return err
	}
	if !next.complete() {
		h.log.Error("reload failed; keeping current code", zap.Error(ErrIncomplete))
		return ErrIncomplete
	}

	state := h.module.PreReload()
	h.module = next
	h.module.PostReload(state, h.env)
	h.generation++

	h.log.Info("reloaded", zap.Int("generation", h.generation))
	return nil
}
