package booking

import (
	"context"
	"errors"
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/app/services/core/appointments"
	"hospital-booking-service/internal/app/services/core/doctors"
	"hospital-booking-service/internal/app/services/core/hospitals"
	"hospital-booking-service/internal/app/services/core/patients"
	"hospital-booking-service/internal/app/services/shared/recordstore"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/dto/requests"
	"hospital-booking-service/internal/pkg/exceptions"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
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

type memoryLocker struct {
	mu   sync.Mutex
	held map[string]string
}

func newMemoryLocker() *memoryLocker {
	return &memoryLocker{held: make(map[string]string)}
}

func (l *memoryLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (*contracts.Lease, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return nil, nil
	}
	lease := &contracts.Lease{Key: key, Token: uuid.NewString(), TTL: ttl}
	l.held[key] = lease.Token
	return lease, nil
}

func (l *memoryLocker) Release(ctx context.Context, lease *contracts.Lease) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[lease.Key] == lease.Token {
		delete(l.held, lease.Key)
	}
	return nil
}

func (l *memoryLocker) Extend(ctx context.Context, lease *contracts.Lease) error {
	return nil
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishAppointmentBooked(ctx context.Context, event *models.AppointmentBookedEvent) error {
	return m.Called(ctx, event).Error(0)
}

type failingAppointmentRepository struct {
	contracts.AppointmentRepository
}

func (r *failingAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return errors.New("disk full")
}

type bookingFixture struct {
	usecase      contracts.BookingUsecase
	doctors      contracts.DoctorRepository
	appointments contracts.AppointmentRepository
	locker       *memoryLocker
	publisher    *mockEventPublisher
}

// today is 2030-01-15 in every booking test.
var today = time.Date(2030, time.January, 15, 10, 0, 0, 0, time.UTC)

func newBookingFixture(t *testing.T, override func(deps *Dependencies)) *bookingFixture {
	t.Helper()
	ctx := context.Background()
	store := recordstore.NewMemoryRecordStore(zap.NewNop())

	hospitalRepo := hospitals.NewHospitalStoreRepository(store)
	doctorRepo := doctors.NewDoctorStoreRepository(store)
	patientRepo := patients.NewPatientStoreRepository(store)
	appointmentRepo := appointments.NewAppointmentStoreRepository(store)

	require.NoError(t, hospitalRepo.Create(ctx, &models.Hospital{ID: "h1", HospitalName: "City", Pin: "111", Departments: []string{"Cardiology"}}))
	require.NoError(t, hospitalRepo.Create(ctx, &models.Hospital{ID: "h2", HospitalName: "General", Pin: "222", Departments: []string{"Cardiology"}}))
	require.NoError(t, patientRepo.Create(ctx, &models.Patient{ID: "pat-1", Name: "Kiran", UniqueID: "U1"}))
	require.NoError(t, patientRepo.Create(ctx, &models.Patient{ID: "pat-2", Name: "Lata", UniqueID: "U2"}))
	require.NoError(t, doctorRepo.Create(ctx, &models.Doctor{
		ID:   "doc-1",
		Name: "Asha Rao",
		Associations: []models.Association{
			{HospitalPin: "111", Department: "Cardiology", Fee: 500, TimeSlots: []string{"9-10", "10-11"}},
		},
	}))

	publisher := new(mockEventPublisher)
	publisher.On("PublishAppointmentBooked", mock.Anything, mock.Anything).Return(nil)
	locker := newMemoryLocker()

	deps := Dependencies{
		HospitalRepository:    hospitalRepo,
		DoctorRepository:      doctorRepo,
		PatientRepository:     patientRepo,
		AppointmentRepository: appointmentRepo,
		SessionService: &stubSessionService{sessions: map[string]*models.Session{
			"patient-1": {Role: constvars.RoleTypePatient, PatientID: "pat-1"},
			"admin-111": {Role: constvars.RoleTypeHospitalAdmin, HospitalID: "h1", HospitalPin: "111"},
			"doctor-1":  {Role: constvars.RoleTypeDoctor, DoctorID: "doc-1"},
		}},
		LockerService:  locker,
		EventPublisher: publisher,
		InternalConfig: &config.InternalConfig{Booking: config.AppBooking{LockExpirationInSeconds: 10}},
		Log:            zap.NewNop(),
		Now:            func() time.Time { return today },
	}
	if override != nil {
		override(&deps)
	}

	return &bookingFixture{
		usecase:      NewBookingUsecase(deps),
		doctors:      doctorRepo,
		appointments: appointmentRepo,
		locker:       locker,
		publisher:    publisher,
	}
}

func bookingRequest(sessionData, slot string) *requests.BookAppointment {
	fee := 500.0
	return &requests.BookAppointment{
		SessionData: sessionData,
		DoctorID:    "doc-1",
		HospitalPin: "111",
		Department:  "Cardiology",
		Slot:        slot,
		Date:        "2030-01-15",
		Fee:         &fee,
	}
}

func TestBookingUsecase_BookAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("consumes the slot and records one appointment", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		appointment, err := f.usecase.BookAppointment(ctx, bookingRequest("patient-1", "9-10"))
		require.NoError(t, err)
		assert.Equal(t, "pat-1", appointment.PatientID)
		assert.Equal(t, "Asha Rao", appointment.DoctorName)
		assert.Equal(t, "9-10", appointment.Slot)
		assert.Equal(t, 500.0, appointment.Fee)
		assert.Equal(t, "2030-01-15", appointment.Date)

		doctor, err := f.doctors.FindByID(ctx, "doc-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"10-11"}, doctor.Associations[0].TimeSlots)

		stored, err := f.appointments.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, stored, 1)
		f.publisher.AssertNumberOfCalls(t, "PublishAppointmentBooked", 1)
	})

	t.Run("consumed slot cannot be booked again", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.usecase.BookAppointment(ctx, bookingRequest("patient-1", "9-10"))
		require.NoError(t, err)

		_, err = f.usecase.BookAppointment(ctx, bookingRequest("patient-1", "9-10"))
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))

		stored, err := f.appointments.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, stored, 1, "a failed booking must not write an appointment")
	})

	t.Run("fee changes after booking leave the appointment alone", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		_, err := f.usecase.BookAppointment(ctx, bookingRequest("patient-1", "9-10"))
		require.NoError(t, err)
		require.NoError(t, f.doctors.UpdateAssociationFee(ctx, "doc-1", models.AssociationKey{HospitalPin: "111", Department: "Cardiology"}, 900))

		stored, err := f.appointments.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, 500.0, stored[0].Fee)
	})

	t.Run("stale fee snapshot", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		request := bookingRequest("patient-1", "9-10")
		stale := 450.0
		request.Fee = &stale

		_, err := f.usecase.BookAppointment(ctx, request)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
	})

	t.Run("past date", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		request := bookingRequest("patient-1", "9-10")
		request.Date = "2030-01-14"

		_, err := f.usecase.BookAppointment(ctx, request)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("unknown association", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		request := bookingRequest("patient-1", "9-10")
		request.HospitalPin = "222"

		_, err := f.usecase.BookAppointment(ctx, request)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("slot lease held elsewhere", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		lease, err := f.locker.Acquire(ctx, slotLockKey("doc-1", "9-10"), time.Second)
		require.NoError(t, err)
		require.NotNil(t, lease)

		_, err = f.usecase.BookAppointment(ctx, bookingRequest("patient-1", "9-10"))
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))

		doctor, err := f.doctors.FindByID(ctx, "doc-1")
		require.NoError(t, err)
		assert.Len(t, doctor.Associations[0].TimeSlots, 2)
	})

	t.Run("held lease on one slot does not block another slot", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		lease, err := f.locker.Acquire(ctx, slotLockKey("doc-1", "9-10"), time.Second)
		require.NoError(t, err)
		require.NotNil(t, lease)

		appointment, err := f.usecase.BookAppointment(ctx, bookingRequest("patient-1", "10-11"))
		require.NoError(t, err)
		assert.Equal(t, "10-11", appointment.Slot)

		doctor, err := f.doctors.FindByID(ctx, "doc-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"9-10"}, doctor.Associations[0].TimeSlots)
	})

	t.Run("concurrent bookings of different slots all succeed", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, slot := range []string{"9-10", "10-11"} {
			wg.Add(1)
			go func(i int, slot string) {
				defer wg.Done()
				_, errs[i] = f.usecase.BookAppointment(ctx, bookingRequest("patient-1", slot))
			}(i, slot)
		}
		wg.Wait()

		assert.NoError(t, errs[0])
		assert.NoError(t, errs[1])
		stored, err := f.appointments.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, stored, 2)
	})

	t.Run("failed appointment write restores the slot", func(t *testing.T) {
		f := newBookingFixture(t, func(deps *Dependencies) {
			deps.AppointmentRepository = &failingAppointmentRepository{}
		})

		_, err := f.usecase.BookAppointment(ctx, bookingRequest("patient-1", "9-10"))
		require.Error(t, err)

		doctor, err := f.doctors.FindByID(ctx, "doc-1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"9-10", "10-11"}, doctor.Associations[0].TimeSlots)
		f.publisher.AssertNotCalled(t, "PublishAppointmentBooked", mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail the booking", func(t *testing.T) {
		publisher := new(mockEventPublisher)
		publisher.On("PublishAppointmentBooked", mock.Anything, mock.Anything).Return(errors.New("broker down"))
		f := newBookingFixture(t, func(deps *Dependencies) {
			deps.EventPublisher = publisher
		})

		_, err := f.usecase.BookAppointment(ctx, bookingRequest("patient-1", "9-10"))
		require.NoError(t, err)
		publisher.AssertExpectations(t)
	})

	t.Run("concurrent bookings of one slot", func(t *testing.T) {
		f := newBookingFixture(t, nil)

		var wg sync.WaitGroup
		var mu sync.Mutex
		successes := 0
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.usecase.BookAppointment(ctx, bookingRequest("patient-1", "10-11"))
				if err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
					return
				}
				assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		stored, err := f.appointments.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})
}

func TestBookingUsecase_BookAppointmentRoles(t *testing.T) {
	ctx := context.Background()

	t.Run("admin books a patient at its own hospital", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		request := bookingRequest("admin-111", "9-10")
		request.PatientID = "pat-2"

		appointment, err := f.usecase.BookAppointment(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, "pat-2", appointment.PatientID)
	})

	t.Run("admin must name the patient", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		_, err := f.usecase.BookAppointment(ctx, bookingRequest("admin-111", "9-10"))
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("admin cannot book at another hospital", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		request := bookingRequest("admin-111", "9-10")
		request.PatientID = "pat-2"
		request.HospitalPin = "222"

		_, err := f.usecase.BookAppointment(ctx, request)
		assert.Equal(t, http.StatusForbidden, exceptions.StatusCodeOf(err))
	})

	t.Run("patient cannot book for someone else", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		request := bookingRequest("patient-1", "9-10")
		request.PatientID = "pat-2"

		_, err := f.usecase.BookAppointment(ctx, request)
		assert.Equal(t, http.StatusForbidden, exceptions.StatusCodeOf(err))
	})

	t.Run("doctors cannot book", func(t *testing.T) {
		f := newBookingFixture(t, nil)
		_, err := f.usecase.BookAppointment(ctx, bookingRequest("doctor-1", "9-10"))
		assert.Equal(t, http.StatusForbidden, exceptions.StatusCodeOf(err))
	})
}

func TestBookingUsecase_Lookups(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t, nil)

	departments, err := f.usecase.ListEligibleDepartments(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, []string{"Cardiology"}, departments.Departments)

	unknown, err := f.usecase.ListEligibleDepartments(ctx, "999")
	require.NoError(t, err)
	assert.Empty(t, unknown.Departments)

	eligible, err := f.usecase.ListEligibleDoctors(ctx, "111", "Cardiology")
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, "doc-1", eligible[0].ID)

	lookup := &requests.AssociationLookup{DoctorID: "doc-1", HospitalPin: "111", Department: "Cardiology"}
	slots, err := f.usecase.ListAvailableSlots(ctx, lookup)
	require.NoError(t, err)
	assert.Equal(t, []string{"9-10", "10-11"}, slots.TimeSlots)

	fee, err := f.usecase.GetConsultationFee(ctx, lookup)
	require.NoError(t, err)
	assert.Equal(t, 500.0, fee.Fee)

	fee, err = f.usecase.GetConsultationFee(ctx, &requests.AssociationLookup{DoctorID: "nobody", HospitalPin: "111", Department: "Cardiology"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, fee.Fee)
}
