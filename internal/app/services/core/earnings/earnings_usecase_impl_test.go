package earnings

import (
	"context"
	"errors"
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/app/services/core/appointments"
	"hospital-booking-service/internal/app/services/core/doctors"
	"hospital-booking-service/internal/app/services/core/hospitals"
	"hospital-booking-service/internal/app/services/shared/recordstore"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/dto/responses"
	"hospital-booking-service/internal/pkg/exceptions"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessionService struct {
	sessions map[string]*models.Session
}

func (s *stubSessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	return "token", nil
}

func (s *stubSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session, ok := s.sessions[sessionData]
	if !ok {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return session, nil
}

func (s *stubSessionService) LookupSessionData(ctx context.Context, sessionID string) (string, error) {
	return sessionID, nil
}

func (s *stubSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

type mockReportStorage struct {
	mock.Mock
}

func (m *mockReportStorage) UploadJSON(ctx context.Context, objectName string, payload interface{}) error {
	return m.Called(ctx, objectName, payload).Error(0)
}

func (m *mockReportStorage) GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

var exportTime = time.Date(2030, time.March, 2, 8, 30, 0, 0, time.UTC)

func newEarningsFixture(t *testing.T, storage *mockReportStorage) Dependencies {
	t.Helper()
	ctx := context.Background()
	store := recordstore.NewMemoryRecordStore(zap.NewNop())

	hospitalRepo := hospitals.NewHospitalStoreRepository(store)
	doctorRepo := doctors.NewDoctorStoreRepository(store)
	appointmentRepo := appointments.NewAppointmentStoreRepository(store)

	require.NoError(t, hospitalRepo.Create(ctx, &models.Hospital{ID: "h1", HospitalName: "City", Pin: "111"}))
	require.NoError(t, hospitalRepo.Create(ctx, &models.Hospital{ID: "h2", HospitalName: "General", Pin: "222"}))
	require.NoError(t, doctorRepo.Create(ctx, &models.Doctor{ID: "doc-1", Name: "Asha"}))
	require.NoError(t, doctorRepo.Create(ctx, &models.Doctor{ID: "doc-2", Name: "Vikram"}))
	for _, appointment := range sampleAppointments() {
		appointment := appointment
		require.NoError(t, appointmentRepo.Create(ctx, &appointment))
	}
	// booked at a hospital that is no longer on record
	require.NoError(t, appointmentRepo.Create(ctx, &models.Appointment{ID: "a5", DoctorID: "doc-1", DoctorName: "Asha", HospitalPin: "999", Department: "Cardiology", Fee: 100}))

	deps := Dependencies{
		AppointmentRepository: appointmentRepo,
		HospitalRepository:    hospitalRepo,
		DoctorRepository:      doctorRepo,
		SessionService: &stubSessionService{sessions: map[string]*models.Session{
			"doctor-1":  {Role: constvars.RoleTypeDoctor, DoctorID: "doc-1"},
			"admin-111": {Role: constvars.RoleTypeHospitalAdmin, HospitalID: "h1", HospitalPin: "111"},
			"patient-1": {Role: constvars.RoleTypePatient, PatientID: "pat-1"},
		}},
		InternalConfig: &config.InternalConfig{Report: config.AppReport{PresignedURLExpiryTimeInHours: 24}},
		Log:            zap.NewNop(),
		Now:            func() time.Time { return exportTime },
	}
	if storage != nil {
		deps.ReportStorage = storage
	}
	return deps
}

func TestEarningsUsecase_GetDoctorEarnings(t *testing.T) {
	ctx := context.Background()
	uc := NewEarningsUsecase(newEarningsFixture(t, nil))

	t.Run("labels hospitals by name with pin fallback", func(t *testing.T) {
		got, err := uc.GetDoctorEarnings(ctx, "doctor-1")
		require.NoError(t, err)

		assert.Equal(t, "Asha", got.DoctorName)
		assert.Equal(t, 4, got.Count)
		assert.Equal(t, 840.0, got.TotalEarnings)
		assert.Equal(t, []responses.EarningsEntry{
			{Label: "City", Amount: 600},
			{Label: "General", Amount: 180},
			{Label: "999", Amount: 60},
		}, got.ByHospital)
	})

	t.Run("hospitals sharing a name stay separate", func(t *testing.T) {
		deps := newEarningsFixture(t, nil)
		require.NoError(t, deps.HospitalRepository.Create(ctx, &models.Hospital{ID: "h3", HospitalName: "City Hospital", Location: "Pune", Pin: "333"}))
		require.NoError(t, deps.HospitalRepository.Create(ctx, &models.Hospital{ID: "h4", HospitalName: "City Hospital", Location: "Delhi", Pin: "444"}))
		require.NoError(t, deps.DoctorRepository.Create(ctx, &models.Doctor{ID: "doc-3", Name: "Meera"}))
		require.NoError(t, deps.AppointmentRepository.Create(ctx, &models.Appointment{ID: "a6", DoctorID: "doc-3", DoctorName: "Meera", HospitalPin: "333", Fee: 100}))
		require.NoError(t, deps.AppointmentRepository.Create(ctx, &models.Appointment{ID: "a7", DoctorID: "doc-3", DoctorName: "Meera", HospitalPin: "444", Fee: 100}))
		deps.SessionService = &stubSessionService{sessions: map[string]*models.Session{
			"doctor-3": {Role: constvars.RoleTypeDoctor, DoctorID: "doc-3"},
		}}

		got, err := NewEarningsUsecase(deps).GetDoctorEarnings(ctx, "doctor-3")
		require.NoError(t, err)

		assert.Equal(t, 120.0, got.TotalEarnings)
		assert.Equal(t, []responses.EarningsEntry{
			{Label: "City Hospital", Amount: 60},
			{Label: "City Hospital", Amount: 60},
		}, got.ByHospital)
	})

	t.Run("only doctors", func(t *testing.T) {
		_, err := uc.GetDoctorEarnings(ctx, "admin-111")
		assert.Equal(t, http.StatusForbidden, exceptions.StatusCodeOf(err))
	})
}

func TestEarningsUsecase_GetHospitalEarnings(t *testing.T) {
	ctx := context.Background()
	uc := NewEarningsUsecase(newEarningsFixture(t, nil))

	got, err := uc.GetHospitalEarnings(ctx, "admin-111")
	require.NoError(t, err)
	assert.Equal(t, "City", got.HospitalName)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 1400.0, got.GrossFees)
	assert.Equal(t, 560.0, got.TotalRevenue)
	assert.Equal(t, []responses.EarningsEntry{{Label: "Asha", Amount: 400}, {Label: "Vikram", Amount: 160}}, got.ByDoctor)
	assert.Equal(t, []responses.EarningsEntry{{Label: "Cardiology", Amount: 400}, {Label: "Neurology", Amount: 160}}, got.ByDepartment)

	_, err = uc.GetHospitalEarnings(ctx, "patient-1")
	assert.Equal(t, http.StatusForbidden, exceptions.StatusCodeOf(err))
}

func TestEarningsUsecase_ExportDoctorEarnings(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads the report and presigns it", func(t *testing.T) {
		storage := new(mockReportStorage)
		objectName := "doctor-earnings/doc-1/" + exportTime.Format(constvars.ReportTimestampLayout) + ".json"
		storage.On("UploadJSON", mock.Anything, objectName, mock.AnythingOfType("*responses.DoctorEarnings")).Return(nil)
		storage.On("GetObjectUrlWithExpiryTime", mock.Anything, objectName, 24*time.Hour).Return("https://reports/signed", nil)

		uc := NewEarningsUsecase(newEarningsFixture(t, storage))
		got, err := uc.ExportDoctorEarnings(ctx, "doctor-1")
		require.NoError(t, err)
		assert.Equal(t, objectName, got.ObjectName)
		assert.Equal(t, "https://reports/signed", got.URL)
		assert.Equal(t, exportTime.Add(24*time.Hour), got.ExpiresAt)
		storage.AssertExpectations(t)
	})

	t.Run("upload failure", func(t *testing.T) {
		storage := new(mockReportStorage)
		storage.On("UploadJSON", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket missing"))

		uc := NewEarningsUsecase(newEarningsFixture(t, storage))
		_, err := uc.ExportDoctorEarnings(ctx, "doctor-1")
		require.Error(t, err)
		storage.AssertNotCalled(t, "GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage not configured", func(t *testing.T) {
		uc := NewEarningsUsecase(newEarningsFixture(t, nil))
		_, err := uc.ExportDoctorEarnings(ctx, "doctor-1")
		assert.Equal(t, http.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
	})
}

func TestEarningsUsecase_ExportAllHospitalEarnings(t *testing.T) {
	ctx := context.Background()

	t.Run("one report per hospital", func(t *testing.T) {
		storage := new(mockReportStorage)
		storage.On("UploadJSON", mock.Anything, "hospital-earnings/111/2030-03-02.json", mock.Anything).Return(nil).Once()
		storage.On("UploadJSON", mock.Anything, "hospital-earnings/222/2030-03-02.json", mock.Anything).Return(nil).Once()

		written, err := NewEarningsUsecase(newEarningsFixture(t, storage)).ExportAllHospitalEarnings(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, written)
		storage.AssertExpectations(t)
	})

	t.Run("a failed hospital does not stop the rest", func(t *testing.T) {
		storage := new(mockReportStorage)
		storage.On("UploadJSON", mock.Anything, "hospital-earnings/111/2030-03-02.json", mock.Anything).Return(errors.New("timeout"))
		storage.On("UploadJSON", mock.Anything, "hospital-earnings/222/2030-03-02.json", mock.Anything).Return(nil)

		written, err := NewEarningsUsecase(newEarningsFixture(t, storage)).ExportAllHospitalEarnings(ctx)
		require.Error(t, err)
		assert.Equal(t, 1, written)
	})
}
