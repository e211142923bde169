package scheduling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/models"
)

func confirmTestAppointment(t *testing.T, f *engineFixture) string {
	t.Helper()
	held, err := f.engine.HoldSlot(context.Background(), holdInput())
	require.NoError(t, err)
	res, err := f.engine.ConfirmHold(context.Background(), models.ConfirmHoldInput{
		HoldID: held.HoldID, PatientID: "p1", ServiceID: "S1",
	})
	require.NoError(t, err)
	return res.AppointmentID
}

func TestCancelAppointment_FreesRoom(t *testing.T) {
	f := newFixture(t, nil)
	apptID := confirmTestAppointment(t, f)

	require.NoError(t, f.engine.CancelAppointment(context.Background(), CancelInput{
		ClinicID: "c1", AppointmentID: apptID, PatientID: "p1",
	}))

	cancelled, err := f.appts.ByID(context.Background(), apptID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	// The slot is bookable again.
	_, err = f.engine.HoldSlot(context.Background(), holdInput())
	assert.NoError(t, err)
}

func TestCancelAppointment_ForeignPatientLooksAbsent(t *testing.T) {
	f := newFixture(t, nil)
	apptID := confirmTestAppointment(t, f)

	err := f.engine.CancelAppointment(context.Background(), CancelInput{
		ClinicID: "c1", AppointmentID: apptID, PatientID: "someone-else",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelAppointment_DoubleCancelRejected(t *testing.T) {
	f := newFixture(t, nil)
	apptID := confirmTestAppointment(t, f)

	input := CancelInput{ClinicID: "c1", AppointmentID: apptID, PatientID: "p1"}
	require.NoError(t, f.engine.CancelAppointment(context.Background(), input))

	var invalid *InvalidRequestError
	err := f.engine.CancelAppointment(context.Background(), input)
	assert.ErrorAs(t, err, &invalid)

	err = f.engine.CancelAppointment(context.Background(), CancelInput{ClinicID: "c1", AppointmentID: "missing"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
