package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWizardHappyPath(t *testing.T) {
	w := NewWizard(zap.NewNop())
	require.NotEmpty(t, w.ID())
	require.Equal(t, StepFilters, w.Step())

	require.NoError(t, w.SetFilters(PropertyApartment, Range{Max: 200_000}, Range{Min: 50}, Range{Min: 2}))
	require.NoError(t, w.Next())
	require.Equal(t, StepLocation, w.Step())

	w.SetLocation("  Pesaro ")
	require.NoError(t, w.Next())
	require.Equal(t, StepPurpose, w.Step())

	require.NoError(t, w.SetPurpose(PurposeInvest))
	require.NoError(t, w.Next())
	assert.True(t, w.Done())

	c := w.Criteria()
	assert.Equal(t, PropertyApartment, c.Property)
	assert.Equal(t, "Pesaro", c.Location)
	assert.Equal(t, PurposeInvest, c.Purpose)
	require.NoError(t, c.Validate())
}

func TestWizardRejectsBadFilters(t *testing.T) {
	w := NewWizard(nil)
	err := w.SetFilters(PropertyVilla, Range{Min: 300, Max: 100}, Range{}, Range{})
	require.ErrorIs(t, err, ErrInvalidRange)
	// The shared record is untouched on rejection.
	assert.Equal(t, Criteria{}, w.Criteria())

	require.ErrorIs(t, w.SetFilters("castello", Range{}, Range{}, Range{}), ErrUnknownProperty)
}

func TestWizardBlocksWithoutLocation(t *testing.T) {
	w := NewWizard(nil)
	require.NoError(t, w.Next()) // empty filters are all-unbounded, fine
	require.Equal(t, StepLocation, w.Step())

	require.ErrorIs(t, w.Next(), ErrNoLocation)
	require.Equal(t, StepLocation, w.Step())

	w.SetLocation("Matera")
	require.NoError(t, w.Next())
	require.Equal(t, StepPurpose, w.Step())
}

func TestWizardBack(t *testing.T) {
	w := NewWizard(nil)
	w.Back() // no-op at the first step
	require.Equal(t, StepFilters, w.Step())

	require.NoError(t, w.Next())
	w.SetLocation("Aosta")
	require.NoError(t, w.Next())
	require.Equal(t, StepPurpose, w.Step())

	w.Back()
	require.Equal(t, StepLocation, w.Step())
	// The record keeps its committed values across navigation.
	assert.Equal(t, "Aosta", w.Criteria().Location)
}

func TestWizardDoneIsTerminalUntilBack(t *testing.T) {
	w := NewWizard(nil)
	require.NoError(t, w.Next())
	w.SetLocation("Trento")
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.True(t, w.Done())

	require.ErrorIs(t, w.Next(), ErrWizardDone)

	w.Back()
	require.False(t, w.Done())
	require.Equal(t, StepPurpose, w.Step())
}

func TestWizardRangeSetters(t *testing.T) {
	w := NewWizard(nil)
	require.NoError(t, w.SetPrice(Range{Min: 10_000}))
	require.NoError(t, w.SetSize(Range{Max: 120}))
	require.NoError(t, w.SetRooms(Range{Min: 1, Max: 3}))
	require.ErrorIs(t, w.SetPrice(Range{Min: 5, Max: 1}), ErrInvalidRange)

	c := w.Criteria()
	assert.Equal(t, Range{Min: 10_000}, c.Price)
	assert.Equal(t, Range{Max: 120}, c.Size)
	assert.Equal(t, Range{Min: 1, Max: 3}, c.Rooms)
}
