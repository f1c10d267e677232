package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDetails() Details {
	return Details{
		FirstName: "Sara",
		LastName:  "Haddad",
		Email:     "sara@example.com",
		Phone:     "+971500000000",
	}
}

func TestWizardHappyPath(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepSelectVehicle, w.Step())

	w.SelectVehicle("2025 Stellar EX")
	require.NoError(t, w.Next())
	assert.Equal(t, StepSchedule, w.Step())

	w.SelectDate("Mon, Jan 6")
	require.NoError(t, w.SelectTime("10:00 AM"))
	require.NoError(t, w.Next())
	assert.Equal(t, StepDetails, w.Step())

	w.SetDetails(completeDetails())
	require.NoError(t, w.Confirm())
	assert.Equal(t, StepConfirmed, w.Step())

	// Optimistic update: the slot is taken for the rest of the session.
	assert.True(t, w.Booked().IsBooked("2025 Stellar EX", "Mon, Jan 6", "10:00 AM"))
}

func TestWizardForwardGuards(t *testing.T) {
	w := NewWizard()
	assert.ErrorIs(t, w.Next(), ErrVehicleRequired)

	w.SelectVehicle("2025 Stellar EX")
	require.NoError(t, w.Next())
	assert.ErrorIs(t, w.Next(), ErrScheduleIncomplete)

	w.SelectDate("Mon, Jan 6")
	assert.ErrorIs(t, w.Next(), ErrScheduleIncomplete)

	require.NoError(t, w.SelectTime("10:00 AM"))
	require.NoError(t, w.Next())

	w.SetDetails(Details{FirstName: "Sara"})
	assert.ErrorIs(t, w.Confirm(), ErrDetailsIncomplete)
}

func TestWizardRejectsBookedSlot(t *testing.T) {
	w := NewWizard()
	w.SelectVehicle("2025 Stellar EX")
	require.NoError(t, w.Next())
	w.SelectDate("Mon, Jan 6")

	ok := w.ApplyBookedSlots(w.Generation(), []string{"10:00 AM"})
	require.True(t, ok)

	assert.ErrorIs(t, w.SelectTime("10:00 AM"), ErrSlotBooked)
	require.NoError(t, w.SelectTime("11:00 AM"))
}

func TestWizardDiscardsStaleSlotResponse(t *testing.T) {
	w := NewWizard()
	w.SelectVehicle("2025 Stellar EX")
	require.NoError(t, w.Next())
	w.SelectDate("Mon, Jan 6")
	staleGen := w.Generation()

	// User switches the day before the first fetch lands.
	w.SelectDate("Tue, Jan 7")

	assert.False(t, w.ApplyBookedSlots(staleGen, []string{"10:00 AM"}))
	assert.False(t, w.Booked().IsBooked("2025 Stellar EX", "Tue, Jan 7", "10:00 AM"))

	assert.True(t, w.ApplyBookedSlots(w.Generation(), []string{"9:00 AM"}))
	assert.True(t, w.Booked().IsBooked("2025 Stellar EX", "Tue, Jan 7", "9:00 AM"))
}

func TestWizardBackKeepsLaterData(t *testing.T) {
	w := NewWizard()
	w.SelectVehicle("2025 Stellar EX")
	require.NoError(t, w.Next())
	w.SelectDate("Mon, Jan 6")
	require.NoError(t, w.SelectTime("10:00 AM"))
	require.NoError(t, w.Next())
	w.SetDetails(completeDetails())

	w.Back()
	assert.Equal(t, StepSchedule, w.Step())
	w.Back()
	assert.Equal(t, StepSelectVehicle, w.Step())
	w.Back() // already at the first step
	assert.Equal(t, StepSelectVehicle, w.Step())

	assert.Equal(t, "Mon, Jan 6", w.DateLabel())
	assert.Equal(t, "10:00 AM", w.TimeLabel())
	assert.Equal(t, completeDetails(), w.Details())
}

func TestWizardResetClearsEverythingButBookings(t *testing.T) {
	w := NewWizard()
	w.SelectVehicle("2025 Stellar EX")
	require.NoError(t, w.Next())
	w.SelectDate("Mon, Jan 6")
	require.NoError(t, w.SelectTime("10:00 AM"))
	require.NoError(t, w.Next())
	w.SetDetails(completeDetails())
	require.NoError(t, w.Confirm())

	w.Reset()
	assert.Equal(t, StepSelectVehicle, w.Step())
	assert.Empty(t, w.VehicleKey())
	assert.Empty(t, w.DateLabel())
	assert.Empty(t, w.TimeLabel())
	assert.Equal(t, Details{}, w.Details())

	// Booking another slot in the same session still sees the first one.
	assert.True(t, w.Booked().IsBooked("2025 Stellar EX", "Mon, Jan 6", "10:00 AM"))
}

func TestWizardGenerationSurvivesReset(t *testing.T) {
	w := NewWizard()
	w.SelectVehicle("2025 Stellar EX")
	require.NoError(t, w.Next())
	w.SelectDate("Mon, Jan 6")
	inFlightGen := w.Generation()

	// "Schedule another" before the slot fetch lands, then a fresh selection.
	w.Reset()
	w.SelectVehicle("2024 Comet S")
	require.NoError(t, w.Next())
	w.SelectDate("Tue, Jan 7")

	// The pre-reset response must not install Stellar's Monday reservations
	// under the new vehicle and date.
	assert.False(t, w.ApplyBookedSlots(inFlightGen, []string{"10:00 AM"}))
	assert.False(t, w.Booked().IsBooked("2024 Comet S", "Tue, Jan 7", "10:00 AM"))

	assert.True(t, w.ApplyBookedSlots(w.Generation(), []string{"9:00 AM"}))
	assert.True(t, w.Booked().IsBooked("2024 Comet S", "Tue, Jan 7", "9:00 AM"))
}

func TestWizardConfirmOnlyFromDetails(t *testing.T) {
	w := NewWizard()
	assert.ErrorIs(t, w.Confirm(), ErrNotConfirmable)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "select_vehicle", StepSelectVehicle.String())
	assert.Equal(t, "confirmed", StepConfirmed.String())
	assert.Equal(t, "unknown", Step(42).String())
}
