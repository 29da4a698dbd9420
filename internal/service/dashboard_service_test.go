package service

import (
	"context"
	"fmt"
	"testing"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/permission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadLatest(t *testing.T) {
	assert.Equal(t, []string{"..", "..", "..", ".."}, padLatest(nil, 4))
	assert.Equal(t, []string{"a", "b", "..", ".."}, padLatest([]string{"a", "b"}, 4))
	assert.Equal(t, []string{"a", "b", "c", "d"}, padLatest([]string{"a", "b", "c", "d", "e"}, 4))
}

func TestDashboardService_Get(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := f.schedule(t)

	_, err := f.svc.Appointments.Add(ctx, f.admin, req)
	require.NoError(t, err)

	city, err := f.svc.Cities.GetByID(ctx, f.admin, 1)
	require.NoError(t, err)
	for i := 2; i <= 5; i++ {
		p := patientRequest(city.ID, fmt.Sprintf("H-%d", i))
		p.Name = fmt.Sprintf("Patient %d", i)
		_, err := f.svc.Patients.Add(ctx, f.admin, p)
		require.NoError(t, err)
	}

	d, err := f.svc.Dashboard.Get(ctx, f.admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.Hospitals)
	assert.Equal(t, int64(5), d.Patients)
	assert.Equal(t, int64(1), d.Appointments)
	assert.Equal(t, []string{"Santa Casa", "..", "..", ".."}, d.LatestHospitals)
	assert.Equal(t, []string{"Patient 5", "Patient 4", "Patient 3", "Patient 2"}, d.LatestPatients)
	assert.Equal(t, []string{"Maria Souza", "..", "..", ".."}, d.LatestAppointments)

	nobody := f.actor(t, "nobody@transport.local", permission.ViewPatients)
	_, err = f.svc.Dashboard.Get(ctx, nobody)
	assertKind(t, err, apperror.KindPermissionDenied)
}
