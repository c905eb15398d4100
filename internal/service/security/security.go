// Package security keeps the session registry and the account
// activity trail. Sessions live in Redis so revocation takes effect
// on the next request, before the access token expires.
package security

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/medimind/backend/internal/repo"
	entlog "github.com/medimind/backend/internal/repo/activitylog"
)

// maxActionLen caps stored action strings so a hostile client cannot
// bloat the audit table.
const maxActionLen = 256

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Session is one active login.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`
	Current   bool      `json:"current"`
}

type ActivityRequest struct {
	UserID    uuid.UUID
	Type      string
	Action    string
	Actor     string
	IPAddress *string
	UserAgent *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Sessions
	RegisterSession(ctx context.Context, userID uuid.UUID, ip, userAgent string) (uuid.UUID, error)
	SessionActive(ctx context.Context, userID, sessionID uuid.UUID) (bool, error)
	TouchSession(ctx context.Context, userID, sessionID uuid.UUID)
	ListSessions(ctx context.Context, userID, currentSessionID uuid.UUID) ([]Session, error)
	RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error
	RevokeOtherSessions(ctx context.Context, userID, currentSessionID uuid.UUID) (int, error)

	// Activity trail
	LogActivity(ctx context.Context, req ActivityRequest)
	ListActivity(ctx context.Context, userID uuid.UUID, limit int) ([]*repo.ActivityLog, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type securityService struct {
	db         *repo.Client
	rdb        *redis.Client
	sessionTTL time.Duration
	logger     *slog.Logger
}

func New(db *repo.Client, rdb *redis.Client, sessionTTL time.Duration, logger *slog.Logger) Service {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &securityService{db: db, rdb: rdb, sessionTTL: sessionTTL, logger: logger}
}

func sessionKey(userID, sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s:%s", userID, sessionID)
}

func (s *securityService) RegisterSession(ctx context.Context, userID uuid.UUID, ip, userAgent string) (uuid.UUID, error) {
	sessionID := uuid.New()
	now := time.Now()

	sess := Session{
		ID:        sessionID,
		UserID:    userID,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: now,
		LastSeen:  now,
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal session: %w", err)
	}

	if err := s.rdb.Set(ctx, sessionKey(userID, sessionID), payload, s.sessionTTL).Err(); err != nil {
		return uuid.Nil, fmt.Errorf("store session: %w", err)
	}

	s.LogActivity(ctx, ActivityRequest{
		UserID:    userID,
		Type:      "login",
		Action:    "signed in",
		IPAddress: &ip,
		UserAgent: &userAgent,
	})

	return sessionID, nil
}

func (s *securityService) SessionActive(ctx context.Context, userID, sessionID uuid.UUID) (bool, error) {
	n, err := s.rdb.Exists(ctx, sessionKey(userID, sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return n > 0, nil
}

// TouchSession refreshes last-seen and the TTL. Best effort, a failed
// touch never blocks the request.
func (s *securityService) TouchSession(ctx context.Context, userID, sessionID uuid.UUID) {
	key := sessionKey(userID, sessionID)

	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return
	}
	sess.LastSeen = time.Now()

	payload, err := json.Marshal(sess)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, payload, s.sessionTTL).Err(); err != nil {
		s.logger.Debug("security: touching session failed", "error", err)
	}
}

func (s *securityService) ListSessions(ctx context.Context, userID, currentSessionID uuid.UUID) ([]Session, error) {
	pattern := fmt.Sprintf("session:%s:*", userID)

	var sessions []Session
	iter := s.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		raw, err := s.rdb.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}
		var sess Session
		if err := json.Unmarshal(raw, &sess); err != nil {
			continue
		}
		sess.Current = sess.ID == currentSessionID
		sessions = append(sessions, sess)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan sessions: %w", err)
	}

	return sessions, nil
}

func (s *securityService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	n, err := s.rdb.Del(ctx, sessionKey(userID, sessionID)).Result()
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}

	s.LogActivity(ctx, ActivityRequest{
		UserID: userID,
		Type:   "session_revoked",
		Action: "revoked a session",
	})
	return nil
}

func (s *securityService) RevokeOtherSessions(ctx context.Context, userID, currentSessionID uuid.UUID) (int, error) {
	pattern := fmt.Sprintf("session:%s:*", userID)
	current := sessionKey(userID, currentSessionID)

	revoked := 0
	iter := s.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == current {
			continue
		}
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			return revoked, fmt.Errorf("revoke session %q: %w", key, err)
		}
		revoked++
	}
	if err := iter.Err(); err != nil {
		return revoked, fmt.Errorf("scan sessions: %w", err)
	}

	if revoked > 0 {
		s.LogActivity(ctx, ActivityRequest{
			UserID: userID,
			Type:   "session_revoked",
			Action: fmt.Sprintf("revoked %d other sessions", revoked),
		})
	}
	return revoked, nil
}

// LogActivity appends to the audit trail. Failures are logged and
// swallowed so auditing never breaks the operation being audited.
func (s *securityService) LogActivity(ctx context.Context, req ActivityRequest) {
	action := req.Action
	if len(action) > maxActionLen {
		action = action[:maxActionLen]
	}

	err := s.db.ActivityLog.Create().
		SetUserID(req.UserID).
		SetType(req.Type).
		SetAction(action).
		SetActor(req.Actor).
		SetNillableIPAddress(req.IPAddress).
		SetNillableUserAgent(req.UserAgent).
		Exec(ctx)
	if err != nil {
		s.logger.Warn("security: writing activity log failed",
			"user_id", req.UserID,
			"type", req.Type,
			"error", err,
		)
	}
}

func (s *securityService) ListActivity(ctx context.Context, userID uuid.UUID, limit int) ([]*repo.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	logsList, err := s.db.ActivityLog.Query().
		Where(entlog.UserID(userID)).
		Order(repo.Desc(entlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return logsList, nil
}
