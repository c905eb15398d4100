// Package conversation manages secure messaging threads between
// patients and their care team.
package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medimind/backend/internal/repo"
	entconv "github.com/medimind/backend/internal/repo/conversation"
	entmsg "github.com/medimind/backend/internal/repo/message"
	entuser "github.com/medimind/backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// EnsureRequest identifies the doctor-patient pair a thread belongs to.
type EnsureRequest struct {
	DoctorID    uuid.UUID
	DoctorName  string
	PatientID   uuid.UUID
	PatientName string
}

type SendMessageRequest struct {
	ConversationID uuid.UUID
	Content        string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// EnsureConversation returns the thread between the pair, creating
	// and seeding it when none exists.
	EnsureConversation(ctx context.Context, req EnsureRequest) (*repo.Conversation, error)

	List(ctx context.Context, userID uuid.UUID) ([]*repo.Conversation, error)
	ListMessages(ctx context.Context, userID, conversationID uuid.UUID) ([]*repo.Message, error)
	SendMessage(ctx context.Context, userID uuid.UUID, req SendMessageRequest) (*repo.Message, error)

	// SystemMessage appends a platform-authored message to a thread.
	SystemMessage(ctx context.Context, conversationID uuid.UUID, content string) (*repo.Message, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type conversationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &conversationService{db: db}
}

func (s *conversationService) EnsureConversation(ctx context.Context, req EnsureRequest) (*repo.Conversation, error) {
	// A thread may have been created with the participants in either
	// order, so both are checked.
	existing, err := s.db.Conversation.Query().
		Where(
			entconv.Or(
				entconv.And(entconv.ParticipantA(req.DoctorID), entconv.ParticipantB(req.PatientID)),
				entconv.And(entconv.ParticipantA(req.PatientID), entconv.ParticipantB(req.DoctorID)),
			),
		).
		First(ctx)
	if err == nil {
		return existing, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("check conversation: %w", err)
	}

	seed := fmt.Sprintf(
		"Dr. %s has been assigned to %s's care profile. You can now communicate securely.",
		req.DoctorName, req.PatientName,
	)
	now := time.Now()

	conv, err := s.db.Conversation.Create().
		SetParticipantA(req.DoctorID).
		SetParticipantB(req.PatientID).
		SetParticipantAName(req.DoctorName).
		SetParticipantBName(req.PatientName).
		SetParticipantARole(string(entuser.RoleDoctor)).
		SetParticipantBRole(string(entuser.RolePatient)).
		SetLastMessage(seed).
		SetLastMessageAt(now).
		SetAutoGenerated(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	_, err = s.db.Message.Create().
		SetConversationID(conv.ID).
		SetSenderRole(entmsg.SenderRoleSystem).
		SetSenderName("MediMind").
		SetContent(seed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed conversation: %w", err)
	}

	return conv, nil
}

func (s *conversationService) List(ctx context.Context, userID uuid.UUID) ([]*repo.Conversation, error) {
	convs, err := s.db.Conversation.Query().
		Where(
			entconv.Or(
				entconv.ParticipantA(userID),
				entconv.ParticipantB(userID),
			),
		).
		Order(repo.Desc(entconv.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

func (s *conversationService) ListMessages(ctx context.Context, userID, conversationID uuid.UUID) ([]*repo.Message, error) {
	conv, err := s.loadForParticipant(ctx, userID, conversationID)
	if err != nil {
		return nil, err
	}

	msgs, err := s.db.Message.Query().
		Where(entmsg.ConversationID(conv.ID)).
		Order(repo.Asc(entmsg.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	// Opening a thread marks the other party's messages as read.
	_, err = s.db.Message.Update().
		Where(
			entmsg.ConversationID(conv.ID),
			entmsg.Read(false),
			entmsg.Or(
				entmsg.SenderIDNEQ(userID),
				entmsg.SenderIDIsNil(),
			),
		).
		SetRead(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark messages read: %w", err)
	}

	return msgs, nil
}

func (s *conversationService) SendMessage(ctx context.Context, userID uuid.UUID, req SendMessageRequest) (*repo.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	conv, err := s.loadForParticipant(ctx, userID, req.ConversationID)
	if err != nil {
		return nil, err
	}

	senderName := conv.ParticipantAName
	senderRole := conv.ParticipantARole
	if conv.ParticipantB == userID {
		senderName = conv.ParticipantBName
		senderRole = conv.ParticipantBRole
	}

	msg, err := s.db.Message.Create().
		SetConversationID(conv.ID).
		SetSenderID(userID).
		SetSenderName(senderName).
		SetSenderRole(entmsg.SenderRole(senderRole)).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	if err := s.db.Conversation.UpdateOneID(conv.ID).
		SetLastMessage(content).
		SetLastMessageAt(msg.CreatedAt).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("update conversation preview: %w", err)
	}

	return msg, nil
}

func (s *conversationService) SystemMessage(ctx context.Context, conversationID uuid.UUID, content string) (*repo.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	conv, err := s.db.Conversation.Get(ctx, conversationID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}

	msg, err := s.db.Message.Create().
		SetConversationID(conv.ID).
		SetSenderRole(entmsg.SenderRoleSystem).
		SetSenderName("MediMind").
		SetContent(content).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create system message: %w", err)
	}

	if err := s.db.Conversation.UpdateOneID(conv.ID).
		SetLastMessage(content).
		SetLastMessageAt(msg.CreatedAt).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("update conversation preview: %w", err)
	}

	return msg, nil
}

func (s *conversationService) loadForParticipant(ctx context.Context, userID, conversationID uuid.UUID) (*repo.Conversation, error) {
	conv, err := s.db.Conversation.Get(ctx, conversationID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	if conv.ParticipantA != userID && conv.ParticipantB != userID {
		return nil, ErrNotParticipant
	}
	return conv, nil
}
