package roster

import (
	"context"
	"strings"
	"sync"

	"github.com/Iron-Ham/teambuilder/internal/errors"
	"github.com/Iron-Ham/teambuilder/internal/logging"
)

// Lookup resolves a free-text creature name. Implementations normalize the
// name themselves and report every failure as an error matching
// errors.ErrNotFound.
type Lookup interface {
	Lookup(ctx context.Context, name string) (Creature, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(ctx context.Context, name string) (Creature, error)

// Lookup calls f.
func (f LookupFunc) Lookup(ctx context.Context, name string) (Creature, error) {
	return f(ctx, name)
}

// RenderFunc receives the freshly rendered slots after every roster mutation.
type RenderFunc func(slots []Slot)

// Controller applies user actions to a Roster. Failed actions are recorded
// as the status line and returned; successful adds clear the status.
type Controller struct {
	mu       sync.Mutex
	roster   Roster
	status   string
	lookup   Lookup
	onRender RenderFunc
	logger   *logging.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithRenderFunc registers the callback invoked after each mutation.
func WithRenderFunc(fn RenderFunc) Option {
	return func(c *Controller) {
		c.onRender = fn
	}
}

// WithLogger sets the controller's logger.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a Controller with an empty roster.
func NewController(lookup Lookup, opts ...Option) *Controller {
	c := &Controller{
		lookup: lookup,
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent("roster")
	return c
}

// Add resolves name and appends it to the roster.
//
// Blank names fail with ErrEmptyInput and a full roster fails with
// ErrRosterFull, both without calling the lookup. A failed lookup returns an
// error matching ErrNotFound. The lock is not held during the lookup, so the
// capacity check is repeated before appending.
func (c *Controller) Add(ctx context.Context, name string) error {
	trimmed := strings.TrimSpace(name)

	c.mu.Lock()
	if trimmed == "" {
		return c.failLocked(errors.NewRosterError("add", errors.ErrEmptyInput).WithSize(c.roster.Len()))
	}
	if c.roster.Full() {
		return c.failLocked(errors.NewRosterError("add", errors.ErrRosterFull).WithSize(c.roster.Len()).WithName(trimmed))
	}
	c.mu.Unlock()

	creature, err := c.lookup.Lookup(ctx, trimmed)
	if err != nil {
		if !errors.Is(err, errors.ErrNotFound) {
			err = errors.NewLookupError(trimmed, err)
		}
		c.mu.Lock()
		return c.failLocked(err)
	}

	c.mu.Lock()
	if err := c.roster.Append(creature); err != nil {
		return c.failLocked(err)
	}
	c.status = ""
	slots := Render(c.roster.members)
	size := c.roster.Len()
	c.mu.Unlock()

	c.logger.Info("creature added", "name", creature.Name, "roster_size", size)
	c.notify(slots)
	return nil
}

// failLocked records err as the status line, releases the lock and returns err.
func (c *Controller) failLocked(err error) error {
	c.status = errors.UserMessage(err)
	size := c.roster.Len()
	c.mu.Unlock()

	c.logger.Debug("add rejected", "error", err.Error(), "roster_size", size)
	return err
}

// Remove deletes the creature shown at the given slot index and re-renders.
// An index that does not point at a filled slot is ignored.
func (c *Controller) Remove(index int) bool {
	c.mu.Lock()
	if !c.roster.RemoveAt(index) {
		c.mu.Unlock()
		return false
	}
	slots := Render(c.roster.members)
	size := c.roster.Len()
	c.mu.Unlock()

	c.logger.Info("creature removed", "index", index, "roster_size", size)
	c.notify(slots)
	return true
}

// Clear empties the roster and re-renders. The status line is left as is.
func (c *Controller) Clear() {
	c.mu.Lock()
	c.roster.Clear()
	slots := Render(nil)
	c.mu.Unlock()

	c.logger.Info("roster cleared")
	c.notify(slots)
}

func (c *Controller) notify(slots []Slot) {
	if c.onRender != nil {
		c.onRender(slots)
	}
}

// Slots renders the current roster.
func (c *Controller) Slots() []Slot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Render(c.roster.members)
}

// Members returns a copy of the roster contents.
func (c *Controller) Members() []Creature {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roster.Members()
}

// Len returns the roster size.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roster.Len()
}

// Full reports whether the roster has no free slot.
func (c *Controller) Full() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roster.Full()
}

// Status returns the current status line; empty means no error to show.
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}
