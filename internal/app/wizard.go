package app

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Step is one screen of the three-step search wizard.
type Step int

const (
	// StepFilters collects property type and the price/size/rooms ranges.
	StepFilters Step = iota
	// StepLocation collects the locality.
	StepLocation
	// StepPurpose collects the purpose and reviews the whole record.
	StepPurpose

	stepCount
)

func (s Step) String() string {
	switch s {
	case StepFilters:
		return "filters"
	case StepLocation:
		return "location"
	case StepPurpose:
		return "purpose"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

var ErrWizardDone = errors.New("wizard already completed")

// Wizard drives the filter collection flow: one shared criteria record, an
// explicit step counter, forward transitions gated on the current step being
// valid. A wizard belongs to a single UI session, but debounced draft commits
// land on a timer goroutine, so the record and step are mutex guarded.
type Wizard struct {
	mu       sync.Mutex
	id       string
	step     Step
	done     bool
	criteria Criteria
	logger   *zap.Logger
}

// NewWizard starts a fresh session. A nil logger is replaced with a no-op.
func NewWizard(logger *zap.Logger) *Wizard {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Wizard{id: uuid.NewString(), logger: logger}
	w.logger.Debug("wizard started", zap.String("session", w.id))
	return w
}

// ID returns the session identifier used in log fields.
func (w *Wizard) ID() string { return w.id }

// Step returns the current step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Done reports whether the wizard has passed its last step.
func (w *Wizard) Done() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.done
}

// Criteria returns a copy of the shared record in its current state.
func (w *Wizard) Criteria() Criteria {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.criteria
}

// SetFilters stores the first step's values. Invalid ranges are rejected
// without touching the record.
func (w *Wizard) SetFilters(p PropertyType, price, size, rooms Range) error {
	if _, ok := propertyTypes[p]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProperty, p)
	}
	pairs := []namedRange{{"prezzo", price}, {"superficie", size}, {"locali", rooms}}
	if err := checkRanges(pairs); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.criteria.Property = p
	w.criteria.Price = price
	w.criteria.Size = size
	w.criteria.Rooms = rooms
	return nil
}

// SetPrice replaces just the price range; the commit target for a price
// RangeDraft.
func (w *Wizard) SetPrice(r Range) error {
	if !r.Valid() {
		return fmt.Errorf("%w: prezzo %d-%d", ErrInvalidRange, r.Min, r.Max)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.criteria.Price = r
	return nil
}

// SetSize replaces just the size range.
func (w *Wizard) SetSize(r Range) error {
	if !r.Valid() {
		return fmt.Errorf("%w: superficie %d-%d", ErrInvalidRange, r.Min, r.Max)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.criteria.Size = r
	return nil
}

// SetRooms replaces just the rooms range.
func (w *Wizard) SetRooms(r Range) error {
	if !r.Valid() {
		return fmt.Errorf("%w: locali %d-%d", ErrInvalidRange, r.Min, r.Max)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.criteria.Rooms = r
	return nil
}

// PriceDraft returns a commit-on-release draft bound to the price range,
// seeded with the committed value. quiet controls the typed-input debounce.
func (w *Wizard) PriceDraft(quiet time.Duration) *RangeDraft {
	return NewRangeDraft(w.Criteria().Price, quiet, w.commitDraft("prezzo", w.SetPrice))
}

// SizeDraft returns a draft bound to the size range.
func (w *Wizard) SizeDraft(quiet time.Duration) *RangeDraft {
	return NewRangeDraft(w.Criteria().Size, quiet, w.commitDraft("superficie", w.SetSize))
}

// RoomsDraft returns a draft bound to the rooms range.
func (w *Wizard) RoomsDraft(quiet time.Duration) *RangeDraft {
	return NewRangeDraft(w.Criteria().Rooms, quiet, w.commitDraft("locali", w.SetRooms))
}

// commitDraft wraps a range setter so a rejected commit still leaves a trace.
func (w *Wizard) commitDraft(field string, set func(Range) error) func(Range) {
	return func(r Range) {
		if err := set(r); err != nil {
			w.logger.Debug("draft commit rejected",
				zap.String("session", w.id),
				zap.String("field", field),
				zap.Error(err))
		}
	}
}

// SetLocation stores the chosen locality.
func (w *Wizard) SetLocation(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.criteria.Location = strings.TrimSpace(name)
}

// SetPurpose stores the purpose.
func (w *Wizard) SetPurpose(p Purpose) error {
	if _, ok := purposes[p]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPurpose, p)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.criteria.Purpose = p
	return nil
}

// Next validates the current step and advances. Advancing past the last step
// validates the whole record and marks the wizard done.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done {
		return ErrWizardDone
	}
	if err := w.stepValid(w.step); err != nil {
		w.logger.Debug("step rejected",
			zap.String("session", w.id),
			zap.Stringer("step", w.step),
			zap.Error(err))
		return err
	}
	if w.step == stepCount-1 {
		w.done = true
		w.logger.Info("wizard completed", zap.String("session", w.id))
		return nil
	}
	w.step++
	w.logger.Debug("step advanced",
		zap.String("session", w.id),
		zap.Stringer("step", w.step))
	return nil
}

// Back moves one step back. It never fails; backing out of the first step is
// a no-op, and backing out of a completed wizard reopens its last step.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done {
		w.done = false
		return
	}
	if w.step > 0 {
		w.step--
	}
}

// stepValid is called with w.mu held.
func (w *Wizard) stepValid(s Step) error {
	switch s {
	case StepFilters:
		return checkRanges(w.criteria.rangePairs())
	case StepLocation:
		if strings.TrimSpace(w.criteria.Location) == "" {
			return ErrNoLocation
		}
		return nil
	case StepPurpose:
		return w.criteria.Validate()
	default:
		return fmt.Errorf("unknown step %d", int(s))
	}
}
