package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
)

type Producer struct {
	l                 *slog.Logger
	w                 *kafka.Writer
	clientEventsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                 l,
		w:                 w,
		clientEventsTopic: topic,
	}
}

const (
	EventClientCreated = "client.created"
	EventClientDeleted = "client.deleted"
)

type ClientEvent struct {
	Event    string    `json:"event"`
	ClientID uuid.UUID `json:"client_id"`
}

func (p *Producer) SendClientCreated(ctx context.Context, clientID uuid.UUID) {
	p.send(ctx, EventClientCreated, clientID)
}

func (p *Producer) SendClientDeleted(ctx context.Context, clientID uuid.UUID) {
	p.send(ctx, EventClientDeleted, clientID)
}

// send is fire-and-forget: delivery failures are logged, never returned,
// so the CRUD path does not depend on the broker being up.
func (p *Producer) send(ctx context.Context, event string, clientID uuid.UUID) {
	b, err := json.Marshal(ClientEvent{
		Event:    event,
		ClientID: clientID,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(clientID.String()),
		Value: b,
		Topic: p.clientEventsTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
