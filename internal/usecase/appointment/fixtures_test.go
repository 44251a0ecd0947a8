package appointment

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/CareSlotLabs/hospital-scheduler/internal/audit"
	domain "github.com/CareSlotLabs/hospital-scheduler/internal/domain/appointment"
	"github.com/CareSlotLabs/hospital-scheduler/internal/models"
	"github.com/CareSlotLabs/hospital-scheduler/internal/notify"
	"github.com/CareSlotLabs/hospital-scheduler/internal/timezone"
)

// memRepo is an in-memory Repository for use case tests.
type memRepo struct {
	doctors      map[uint]*models.Doctor
	patients     map[uint]*models.Patient
	appointments map[uint]*models.Appointment
	treatments   []*models.Treatment
	windows      map[uint][]models.AvailabilityWindow
	nextID       uint
}

func newMemRepo() *memRepo {
	return &memRepo{
		doctors:      make(map[uint]*models.Doctor),
		patients:     make(map[uint]*models.Patient),
		appointments: make(map[uint]*models.Appointment),
		windows:      make(map[uint][]models.AvailabilityWindow),
		nextID:       1,
	}
}

func (m *memRepo) GetDoctorByID(_ context.Context, id uint) (*models.Doctor, error) {
	doc, ok := m.doctors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return doc, nil
}

func (m *memRepo) GetPatientByID(_ context.Context, id uint) (*models.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (m *memRepo) HasActiveAppointment(_ context.Context, doctorID uint, date, clock string) (bool, error) {
	for _, ap := range m.appointments {
		if ap.DoctorID == doctorID && ap.Date == date && ap.Time == clock &&
			ap.Status != string(domain.StatusCancelled) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) CreateAppointmentInSlot(ctx context.Context, ap *models.Appointment) error {
	taken, _ := m.HasActiveAppointment(ctx, ap.DoctorID, ap.Date, ap.Time)
	if taken {
		return errors.New("duplicate active slot")
	}
	ap.ID = m.nextID
	m.nextID++
	m.appointments[ap.ID] = ap
	return nil
}

func (m *memRepo) GetAppointmentByID(_ context.Context, appointmentID uint) (*models.Appointment, error) {
	ap, ok := m.appointments[appointmentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ap, nil
}

func (m *memRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	m.appointments[ap.ID] = ap
	return nil
}

func (m *memRepo) SaveCompletion(_ context.Context, ap *models.Appointment, tr *models.Treatment) error {
	m.appointments[ap.ID] = ap
	tr.ID = m.nextID
	m.nextID++
	m.treatments = append(m.treatments, tr)
	return nil
}

func (m *memRepo) GetTreatmentByAppointment(_ context.Context, appointmentID uint) (*models.Treatment, error) {
	for _, tr := range m.treatments {
		if tr.AppointmentID == appointmentID {
			return tr, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepo) GetWindow(_ context.Context, doctorID uint, weekday string) (*models.AvailabilityWindow, error) {
	for i := range m.windows[doctorID] {
		if m.windows[doctorID][i].Weekday == weekday {
			return &m.windows[doctorID][i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRepo) ListWindows(_ context.Context, doctorID uint) ([]models.AvailabilityWindow, error) {
	return m.windows[doctorID], nil
}

func (m *memRepo) ReplaceWindows(_ context.Context, doctorID uint, windows []models.AvailabilityWindow) error {
	m.windows[doctorID] = windows
	return nil
}

var _ domain.Repository = (*memRepo)(nil)

// faultyRepo fails selected lookups with a store-level error.
type faultyRepo struct {
	*memRepo
	patientErr     error
	doctorErr      error
	appointmentErr error
}

func (r *faultyRepo) GetPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	if r.patientErr != nil {
		return nil, r.patientErr
	}
	return r.memRepo.GetPatientByID(ctx, id)
}

func (r *faultyRepo) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	if r.doctorErr != nil {
		return nil, r.doctorErr
	}
	return r.memRepo.GetDoctorByID(ctx, id)
}

func (r *faultyRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if r.appointmentErr != nil {
		return nil, r.appointmentErr
	}
	return r.memRepo.GetAppointmentByID(ctx, id)
}

// memAudit captures dispatched events synchronously.
type memAudit struct {
	events []audit.Event
}

func (m *memAudit) Dispatch(ev audit.Event) {
	m.events = append(m.events, ev)
}

// stub senders for the notifier

type okSender struct{ sent int }

func (s *okSender) Send(_, _, _ string) error {
	s.sent++
	return nil
}

type failingSender struct{}

func (failingSender) Send(_, _, _ string) error {
	return errors.New("smtp connect refused")
}

func testNotifier(s notify.Sender) *notify.Notifier {
	return notify.NewNotifier(s, zerolog.Nop())
}

// futureDate returns a date N days from today in UTC together with its
// weekday name, so fixtures never depend on when the suite runs.
func futureDate(days int) (string, string) {
	d := timezone.Today("UTC").AddDate(0, 0, days)
	return d.Format(domain.DateLayout), d.Weekday().String()
}

// fullWeek opens 09:00-17:00 on every weekday for the doctor.
func fullWeek(doctorID uint) []models.AvailabilityWindow {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	out := make([]models.AvailabilityWindow, 0, len(days))
	for _, d := range days {
		out = append(out, models.AvailabilityWindow{
			DoctorID:  doctorID,
			Weekday:   d,
			StartTime: "09:00",
			EndTime:   "17:00",
		})
	}
	return out
}

type bookingFixture struct {
	repo     *memRepo
	recorder *memAudit
	sender   *okSender
	uc       *BookAppointment
}

func newBookingFixture() *bookingFixture {
	repo := newMemRepo()
	repo.patients[1] = &models.Patient{ID: 1, Name: "Ana Souza", Email: "ana@example.com"}
	repo.doctors[2] = &models.Doctor{ID: 2, Name: "Carlos Lima", Email: "carlos@example.com"}
	repo.windows[2] = fullWeek(2)

	recorder := &memAudit{}
	sender := &okSender{}

	return &bookingFixture{
		repo:     repo,
		recorder: recorder,
		sender:   sender,
		uc:       NewBookAppointment(repo, recorder, testNotifier(sender), "UTC"),
	}
}
