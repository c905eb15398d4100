// Package events publishes domain events over NATS for asynchronous
// consumers (notification workers, audit trail).
package events

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

const (
	SubjectReportAnalyzed     = "medimind.report.analyzed"
	SubjectAppointmentCreated = "medimind.appointment.created"
	SubjectDoctorAssigned     = "medimind.doctor.assigned"
)

// Publisher emits JSON-encoded domain events.
type Publisher struct {
	nc *nats.Conn
}

func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc}
}

func (p *Publisher) Publish(subject string, v any) error {
	if p == nil || p.nc == nil {
		return nil
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal event %q: %w", subject, err)
	}
	if err := p.nc.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish event %q: %w", subject, err)
	}
	return nil
}
