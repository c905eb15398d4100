package meeting

import (
	"strings"
	"testing"

	"github.com/medimind/backend/config"
)

func TestNewRoomFormat(t *testing.T) {
	g := NewGenerator(config.MeetingConfig{
		BaseURL:    "https://meet.example.com/",
		RoomPrefix: "medimind",
	})

	room := g.NewRoom()

	if !strings.HasPrefix(room.Name, "medimind-") {
		t.Errorf("Name = %q, want medimind- prefix", room.Name)
	}
	suffix := strings.TrimPrefix(room.Name, "medimind-")
	if len(suffix) != 12 {
		t.Errorf("Name suffix length = %d, want 12", len(suffix))
	}
	if room.URL != "https://meet.example.com/"+room.Name {
		t.Errorf("URL = %q, want base joined with room name", room.URL)
	}
}

func TestNewRoomUnique(t *testing.T) {
	g := NewGenerator(config.MeetingConfig{
		BaseURL:    "https://meet.example.com",
		RoomPrefix: "medimind",
	})

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		room := g.NewRoom()
		if seen[room.Name] {
			t.Fatalf("duplicate room name %q after %d generations", room.Name, i)
		}
		seen[room.Name] = true
	}
}
