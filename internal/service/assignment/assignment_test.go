package assignment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/medimind/backend/internal/repo"
	"github.com/medimind/backend/internal/repo/enttest"
	entrel "github.com/medimind/backend/internal/repo/relationship"
	entuser "github.com/medimind/backend/internal/repo/user"
	"github.com/medimind/backend/internal/service/conversation"
	"github.com/medimind/backend/pkg/logs"
)

func newStoreService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return New(client, conversation.New(client), logs.Default()), client
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

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("parse uuid %q: %v", s, err)
	}
	return id
}

func TestPickLeastLoaded(t *testing.T) {
	idA := mustUUID(t, "00000000-0000-0000-0000-00000000000a")
	idB := mustUUID(t, "00000000-0000-0000-0000-00000000000b")
	idC := mustUUID(t, "00000000-0000-0000-0000-00000000000c")

	tests := []struct {
		name  string
		loads []DoctorLoad
		want  uuid.UUID
	}{
		{
			name: "single doctor",
			loads: []DoctorLoad{
				{ID: idA, ActivePatients: 10},
			},
			want: idA,
		},
		{
			name: "fewest patients wins",
			loads: []DoctorLoad{
				{ID: idA, ActivePatients: 3},
				{ID: idB, ActivePatients: 1},
				{ID: idC, ActivePatients: 2},
			},
			want: idB,
		},
		{
			name: "zero load beats any load",
			loads: []DoctorLoad{
				{ID: idA, ActivePatients: 1},
				{ID: idB, ActivePatients: 0},
			},
			want: idB,
		},
		{
			name: "tie breaks on lowest id",
			loads: []DoctorLoad{
				{ID: idC, ActivePatients: 2},
				{ID: idA, ActivePatients: 2},
				{ID: idB, ActivePatients: 2},
			},
			want: idA,
		},
		{
			name: "tie break independent of input order",
			loads: []DoctorLoad{
				{ID: idB, ActivePatients: 0},
				{ID: idC, ActivePatients: 0},
				{ID: idA, ActivePatients: 0},
			},
			want: idA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pickLeastLoaded(tt.loads)
			if err != nil {
				t.Fatalf("pickLeastLoaded() error = %v", err)
			}
			if got.ID != tt.want {
				t.Errorf("pickLeastLoaded() = %v, want %v", got.ID, tt.want)
			}
		})
	}
}

func TestPickLeastLoadedEmpty(t *testing.T) {
	if _, err := pickLeastLoaded(nil); !errors.Is(err, ErrNoDoctorsAvailable) {
		t.Errorf("pickLeastLoaded(nil) error = %v, want ErrNoDoctorsAvailable", err)
	}
}

func TestAssignDoctorRecordsOnPatientFirst(t *testing.T) {
	svc, client := newStoreService(t)
	ctx := context.Background()

	doctor := seedUser(t, client, "dr-only", entuser.RoleDoctor)
	patient := seedUser(t, client, "patient", entuser.RolePatient)

	res, err := svc.AssignDoctor(ctx, patient.ID)
	if err != nil {
		t.Fatalf("AssignDoctor() error = %v", err)
	}
	if res.DoctorID != doctor.ID {
		t.Errorf("doctor = %v, want %v", res.DoctorID, doctor.ID)
	}
	if res.AlreadyAssigned {
		t.Error("AlreadyAssigned = true on first assignment")
	}

	got, err := client.User.Get(ctx, patient.ID)
	if err != nil {
		t.Fatalf("load patient: %v", err)
	}
	if got.AssignedDoctorID == nil || *got.AssignedDoctorID != doctor.ID {
		t.Errorf("patient assigned_doctor_id = %v, want %v", got.AssignedDoctorID, doctor.ID)
	}

	linked, err := client.Relationship.Query().
		Where(entrel.DoctorID(doctor.ID), entrel.PatientID(patient.ID)).
		Exist(ctx)
	if err != nil {
		t.Fatalf("check relationship: %v", err)
	}
	if !linked {
		t.Error("care relationship was not created")
	}

	// Assigning again is a no-op that reports the existing doctor.
	res, err = svc.AssignDoctor(ctx, patient.ID)
	if err != nil {
		t.Fatalf("AssignDoctor() second call error = %v", err)
	}
	if !res.AlreadyAssigned || res.DoctorID != doctor.ID {
		t.Errorf("second AssignDoctor() = %+v, want AlreadyAssigned with doctor %v", res, doctor.ID)
	}
}

func TestDoctorLoadsCountsAssignedPatients(t *testing.T) {
	svc, client := newStoreService(t)
	ctx := context.Background()

	drA := seedUser(t, client, "dr-a", entuser.RoleDoctor)
	drB := seedUser(t, client, "dr-b", entuser.RoleDoctor)

	for i := 0; i < 2; i++ {
		p := seedUser(t, client, fmt.Sprintf("patient-%d", i), entuser.RolePatient)
		if err := client.User.UpdateOneID(p.ID).
			SetAssignedDoctorID(drA.ID).
			SetAssignedDoctorName(drA.FullName).
			Exec(ctx); err != nil {
			t.Fatalf("assign patient: %v", err)
		}
	}

	// A relationship row without a matching patient record must not
	// count toward the balance.
	orphan := seedUser(t, client, "orphan", entuser.RolePatient)
	if _, err := client.Relationship.Create().
		SetDoctorID(drB.ID).
		SetPatientID(orphan.ID).
		SetDoctorName(drB.FullName).
		SetPatientName(orphan.FullName).
		Save(ctx); err != nil {
		t.Fatalf("seed relationship: %v", err)
	}

	loads, err := svc.DoctorLoads(ctx)
	if err != nil {
		t.Fatalf("DoctorLoads() error = %v", err)
	}

	byDoctor := make(map[uuid.UUID]int, len(loads))
	for _, l := range loads {
		byDoctor[l.ID] = l.ActivePatients
	}
	if byDoctor[drA.ID] != 2 {
		t.Errorf("load for %v = %d, want 2", drA.ID, byDoctor[drA.ID])
	}
	if byDoctor[drB.ID] != 0 {
		t.Errorf("load for %v = %d, want 0 (stray link must not count)", drB.ID, byDoctor[drB.ID])
	}

	// The next assignment should therefore land on the idle doctor.
	next, err := svc.LeastLoadedDoctor(ctx)
	if err != nil {
		t.Fatalf("LeastLoadedDoctor() error = %v", err)
	}
	if next.ID != drB.ID {
		t.Errorf("LeastLoadedDoctor() = %v, want %v", next.ID, drB.ID)
	}
}
