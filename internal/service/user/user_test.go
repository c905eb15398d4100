package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/medimind/backend/internal/repo"
	"github.com/medimind/backend/internal/repo/enttest"
	entuser "github.com/medimind/backend/internal/repo/user"
	"github.com/medimind/backend/internal/service/assignment"
	"github.com/medimind/backend/internal/service/conversation"
	"github.com/medimind/backend/pkg/logs"
)

func ptr[T any](v T) *T { return &v }

func newStoreService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	assignments := assignment.New(client, conversation.New(client), logs.Default())
	return New(client, assignments, logs.Default()), client
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "e164 passthrough", input: "+14155552671", want: "+14155552671"},
		{name: "national format", input: "(415) 555-2671", want: "+14155552671"},
		{name: "whitespace", input: "  +14155552671  ", want: "+14155552671"},
		{name: "too short", input: "+1415", wantErr: true},
		{name: "letters", input: "not-a-phone", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePhone(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPhone) {
					t.Errorf("normalizePhone(%q) error = %v, want ErrInvalidPhone", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizePhone(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("normalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestProfileComplete(t *testing.T) {
	patientRole := entuser.RolePatient
	doctorRole := entuser.RoleDoctor

	tests := []struct {
		name string
		u    *repo.User
		want bool
	}{
		{
			name: "no role",
			u:    &repo.User{FullName: "Ada", Phone: ptr("+14155552671")},
			want: false,
		},
		{
			name: "patient missing date of birth",
			u: &repo.User{
				Role:     &patientRole,
				FullName: "Ada",
				Phone:    ptr("+14155552671"),
			},
			want: false,
		},
		{
			name: "patient complete",
			u: &repo.User{
				Role:        &patientRole,
				FullName:    "Ada",
				Phone:       ptr("+14155552671"),
				DateOfBirth: ptr("1990-04-02"),
			},
			want: true,
		},
		{
			name: "doctor missing specialty",
			u: &repo.User{
				Role:     &doctorRole,
				FullName: "Grace",
				Phone:    ptr("+14155552671"),
			},
			want: false,
		},
		{
			name: "doctor complete",
			u: &repo.User{
				Role:      &doctorRole,
				FullName:  "Grace",
				Phone:     ptr("+14155552671"),
				Specialty: ptr("cardiology"),
			},
			want: true,
		},
		{
			name: "empty phone",
			u: &repo.User{
				Role:        &patientRole,
				FullName:    "Ada",
				Phone:       ptr(""),
				DateOfBirth: ptr("1990-04-02"),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := profileComplete(tt.u); got != tt.want {
				t.Errorf("profileComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateProfileRetriesAssignmentOnLaterUpdate(t *testing.T) {
	svc, client := newStoreService(t)
	ctx := context.Background()

	u, err := svc.EnsureUser(ctx, EnsureRequest{Email: "ada@example.com", FullName: "Ada"})
	if err != nil {
		t.Fatalf("EnsureUser() error = %v", err)
	}
	if _, err := svc.SelectRole(ctx, u.ID, string(entuser.RolePatient)); err != nil {
		t.Fatalf("SelectRole() error = %v", err)
	}

	// Profile completes while no doctor exists. Assignment fails
	// silently and the patient stays unassigned.
	u, err = svc.UpdateProfile(ctx, u.ID, UpdateProfileRequest{
		Phone:       ptr("+14155552671"),
		DateOfBirth: ptr("1990-04-02"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if !u.ProfileComplete {
		t.Fatal("profile_complete = false after a full profile update")
	}
	if u.AssignedDoctorID != nil {
		t.Fatalf("assigned_doctor_id = %v, want nil with no doctors registered", *u.AssignedDoctorID)
	}

	doctor, err := client.User.Create().
		SetEmail("grace@example.com").
		SetFullName("Grace").
		SetRole(entuser.RoleDoctor).
		SetProfileComplete(true).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor: %v", err)
	}

	// The next profile touch picks the assignment back up even though
	// the profile was already complete.
	u, err = svc.UpdateProfile(ctx, u.ID, UpdateProfileRequest{FullName: ptr("Ada L.")})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if u.AssignedDoctorID == nil || *u.AssignedDoctorID != doctor.ID {
		t.Errorf("assigned_doctor_id = %v, want %v", u.AssignedDoctorID, doctor.ID)
	}
}
