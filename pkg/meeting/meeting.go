// Package meeting generates video consultation rooms on the configured
// meeting host.
package meeting

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medimind/backend/config"
)

// Room is a video room a consultation takes place in.
type Room struct {
	Name string
	URL  string
}

// Generator creates unique room names and joinable URLs.
type Generator struct {
	baseURL    string
	roomPrefix string
}

func NewGenerator(cfg config.MeetingConfig) *Generator {
	return &Generator{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		roomPrefix: cfg.RoomPrefix,
	}
}

// NewRoom returns a fresh room. Names are derived from a random UUID and
// the current time so concurrent bookings never collide.
func (g *Generator) NewRoom() Room {
	seed := fmt.Sprintf("%s-%d", uuid.New().String(), time.Now().UnixNano())
	sum := sha256.Sum256([]byte(seed))
	name := fmt.Sprintf("%s-%s", g.roomPrefix, hex.EncodeToString(sum[:])[:12])

	return Room{
		Name: name,
		URL:  g.baseURL + "/" + name,
	}
}
