package consultation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/medimind/backend/config"
	"github.com/medimind/backend/internal/repo"
	entappt "github.com/medimind/backend/internal/repo/appointment"
	entcons "github.com/medimind/backend/internal/repo/consultation"
	"github.com/medimind/backend/internal/repo/enttest"
	entrec "github.com/medimind/backend/internal/repo/recommendation"
	entuser "github.com/medimind/backend/internal/repo/user"
	"github.com/medimind/backend/internal/service/recommendation"
	"github.com/medimind/backend/pkg/logs"
	"github.com/medimind/backend/pkg/meeting"
)

func testRooms() *meeting.Generator {
	return meeting.NewGenerator(config.MeetingConfig{
		BaseURL:    "https://meet.example.com",
		RoomPrefix: "medimind",
	})
}

func newTestService(t *testing.T) *consultationService {
	t.Helper()
	return &consultationService{
		rooms:  testRooms(),
		logger: logs.Default(),
	}
}

// newStoreService wires the booking engine against an in-memory store.
// The nil publisher is safe: events are skipped when no broker is up.
func newStoreService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	svc := New(client, recommendation.New(client, logs.Default()), testRooms(), nil, logs.Default())
	return svc, client
}

func seedUser(t *testing.T, client *repo.Client, name string, role entuser.Role) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(name + "@example.com").
		SetFullName(name).
		SetRole(role).
		SetProfileComplete(true).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestBookRejectsMissingFields(t *testing.T) {
	s := newTestService(t)
	patientID := uuid.New()

	tests := []struct {
		name string
		req  BookRequest
	}{
		{
			name: "missing doctor",
			req:  BookRequest{Date: "2026-09-01", Time: "10:00"},
		},
		{
			name: "missing date",
			req:  BookRequest{DoctorID: uuid.New(), Time: "10:00"},
		},
		{
			name: "missing time",
			req:  BookRequest{DoctorID: uuid.New(), Date: "2026-09-01"},
		},
		{
			name: "blank date",
			req:  BookRequest{DoctorID: uuid.New(), Date: "   ", Time: "10:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Validation fires before any database access, so a nil
			// client is safe here.
			_, err := s.Book(context.Background(), patientID, tt.req)
			if !errors.Is(err, ErrMissingFields) {
				t.Errorf("Book() error = %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	s := newTestService(t)

	for _, status := range []string{"", "scheduled", "done", "UPCOMING"} {
		_, err := s.UpdateStatus(context.Background(), uuid.New(), uuid.New(), status)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("UpdateStatus(%q) error = %v, want ErrInvalidStatus", status, err)
		}
	}
}

func TestBookWithStaleRecommendationProceedsUnlinked(t *testing.T) {
	svc, client := newStoreService(t)
	ctx := context.Background()

	doctor := seedUser(t, client, "dr-house", entuser.RoleDoctor)
	patient := seedUser(t, client, "patient", entuser.RolePatient)

	// A recommendation that was deleted (or never existed) must not
	// block the booking; the consultation just loses the link.
	stale := uuid.New()
	cons, err := svc.Book(ctx, patient.ID, BookRequest{
		DoctorID:         doctor.ID,
		Date:             "2026-09-01",
		Time:             "10:00",
		RecommendationID: &stale,
	})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if cons.RecommendationID != nil {
		t.Errorf("recommendation_id = %v, want nil for a stale recommendation", *cons.RecommendationID)
	}
	if cons.Status != entcons.StatusScheduled {
		t.Errorf("status = %v, want scheduled", cons.Status)
	}
}

func TestBookRejectsForeignRecommendation(t *testing.T) {
	svc, client := newStoreService(t)
	ctx := context.Background()

	doctor := seedUser(t, client, "dr-house", entuser.RoleDoctor)
	patient := seedUser(t, client, "patient", entuser.RolePatient)
	other := seedUser(t, client, "other-patient", entuser.RolePatient)

	rec, err := client.Recommendation.Create().
		SetPatientID(other.ID).
		SetDoctorID(doctor.ID).
		SetReasonType(entrec.ReasonTypePostReport).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed recommendation: %v", err)
	}

	_, err = svc.Book(ctx, patient.ID, BookRequest{
		DoctorID:         doctor.ID,
		Date:             "2026-09-01",
		Time:             "10:00",
		RecommendationID: &rec.ID,
	})
	if !errors.Is(err, ErrNotYourRecommendation) {
		t.Errorf("Book() error = %v, want ErrNotYourRecommendation", err)
	}
}

func TestUpdateStatusPropagatesToAppointment(t *testing.T) {
	svc, client := newStoreService(t)
	ctx := context.Background()

	doctor := seedUser(t, client, "dr-house", entuser.RoleDoctor)
	patient := seedUser(t, client, "patient", entuser.RolePatient)

	tests := []struct {
		status   string
		wantAppt entappt.Status
	}{
		{status: string(entcons.StatusCompleted), wantAppt: entappt.StatusCompleted},
		{status: string(entcons.StatusCancelled), wantAppt: entappt.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			cons, err := svc.Book(ctx, patient.ID, BookRequest{
				DoctorID: doctor.ID,
				Date:     "2026-09-01",
				Time:     "10:00",
			})
			if err != nil {
				t.Fatalf("Book() error = %v", err)
			}

			if _, err := svc.UpdateStatus(ctx, doctor.ID, cons.ID, tt.status); err != nil {
				t.Fatalf("UpdateStatus(%q) error = %v", tt.status, err)
			}

			appt, err := client.Appointment.Get(ctx, cons.AppointmentID)
			if err != nil {
				t.Fatalf("load appointment: %v", err)
			}
			if appt.Status != tt.wantAppt {
				t.Errorf("appointment status = %v, want %v", appt.Status, tt.wantAppt)
			}
		})
	}

	// in_progress is not terminal and must leave the calendar alone.
	cons, err := svc.Book(ctx, patient.ID, BookRequest{
		DoctorID: doctor.ID,
		Date:     "2026-09-02",
		Time:     "11:00",
	})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, doctor.ID, cons.ID, string(entcons.StatusInProgress)); err != nil {
		t.Fatalf("UpdateStatus(in_progress) error = %v", err)
	}
	appt, err := client.Appointment.Get(ctx, cons.AppointmentID)
	if err != nil {
		t.Fatalf("load appointment: %v", err)
	}
	if appt.Status != entappt.StatusUpcoming {
		t.Errorf("appointment status = %v, want upcoming after in_progress", appt.Status)
	}
}

func TestCancelAppointmentPropagatesToConsultation(t *testing.T) {
	svc, client := newStoreService(t)
	ctx := context.Background()

	doctor := seedUser(t, client, "dr-house", entuser.RoleDoctor)
	patient := seedUser(t, client, "patient", entuser.RolePatient)

	cons, err := svc.Book(ctx, patient.ID, BookRequest{
		DoctorID: doctor.ID,
		Date:     "2026-09-01",
		Time:     "10:00",
	})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	if err := svc.CancelAppointment(ctx, patient.ID, cons.AppointmentID); err != nil {
		t.Fatalf("CancelAppointment() error = %v", err)
	}

	got, err := client.Consultation.Get(ctx, cons.ID)
	if err != nil {
		t.Fatalf("load consultation: %v", err)
	}
	if got.Status != entcons.StatusCancelled {
		t.Errorf("consultation status = %v, want cancelled", got.Status)
	}

	appt, err := client.Appointment.Get(ctx, cons.AppointmentID)
	if err != nil {
		t.Fatalf("load appointment: %v", err)
	}
	if appt.Status != entappt.StatusCancelled {
		t.Errorf("appointment status = %v, want cancelled", appt.Status)
	}

	// A stranger cannot cancel someone else's appointment.
	cons2, err := svc.Book(ctx, patient.ID, BookRequest{
		DoctorID: doctor.ID,
		Date:     "2026-09-03",
		Time:     "09:00",
	})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	stranger := seedUser(t, client, "stranger", entuser.RolePatient)
	if err := svc.CancelAppointment(ctx, stranger.ID, cons2.AppointmentID); !errors.Is(err, ErrForbidden) {
		t.Errorf("CancelAppointment(stranger) error = %v, want ErrForbidden", err)
	}
}

func TestBookRoomGeneration(t *testing.T) {
	s := newTestService(t)

	room := s.rooms.NewRoom()
	if !strings.HasPrefix(room.Name, "medimind-") {
		t.Errorf("room name = %q, want prefix medimind-", room.Name)
	}
	if !strings.Contains(room.URL, room.Name) {
		t.Errorf("room url %q does not contain room name %q", room.URL, room.Name)
	}
}
