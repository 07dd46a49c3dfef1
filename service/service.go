package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/beeracademy/distribute"
	"github.com/beeracademy/distribute/internal/logging"
	"github.com/beeracademy/distribute/types"
)

// Default values for the service configuration.
const (
	DefaultSubject = "distribute.solve"
	DefaultQueue   = "distribute"
)

// Request is the JSON request envelope.
type Request struct {
	// Players holds one token per participant specifier; names joined by the
	// engine's group separator stay in the same game.
	Players []string `json:"players"`
}

// Response is the JSON reply envelope. Exactly one of Games or Error is set.
type Response struct {
	// Games lists the participant names of each game, in game order.
	Games [][]string `json:"games,omitempty"`

	// Message is the rendered bucket listing, ready to forward to a chat
	// channel verbatim.
	Message string `json:"message,omitempty"`

	// Error is a human-readable failure description.
	Error string `json:"error,omitempty"`
}

// Config configures the Service.
//
// Zero values are replaced by defaults via applyDefaults().
type Config struct {
	// Subject is the NATS subject to serve (default "distribute.solve").
	Subject string

	// Queue is the queue group name, so multiple service instances share the
	// load (default "distribute").
	Queue string

	Logger types.Logger
}

func (cfg *Config) applyDefaults() {
	if cfg.Subject == "" {
		cfg.Subject = DefaultSubject
	}
	if cfg.Queue == "" {
		cfg.Queue = DefaultQueue
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewSlogDefault()
	}
}

// Service answers partition requests over NATS request-reply.
type Service struct {
	conn   *nats.Conn
	engine *distribute.Engine
	cfg    Config
	sub    *nats.Subscription
}

// New creates a Service.
//
// Parameters:
//   - conn: NATS connection
//   - engine: Engine answering the requests
//   - cfg: Service configuration (defaults applied in place)
//
// Returns:
//   - *Service: Service ready to Start
//   - error: Nil connection or engine
func New(conn *nats.Conn, engine *distribute.Engine, cfg Config) (*Service, error) {
	if conn == nil {
		return nil, errors.New("NATS connection is required")
	}
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	cfg.applyDefaults()

	return &Service{conn: conn, engine: engine, cfg: cfg}, nil
}

// Start subscribes to the configured subject and begins serving requests.
//
// Returns:
//   - error: Subscription failure, or already started
func (s *Service) Start() error {
	if s.sub != nil {
		return errors.New("service already started")
	}

	sub, err := s.conn.QueueSubscribe(s.cfg.Subject, s.cfg.Queue, s.handle)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", s.cfg.Subject, err)
	}

	s.sub = sub
	s.cfg.Logger.Info("distribute service started", "subject", s.cfg.Subject, "queue", s.cfg.Queue)

	return nil
}

// Stop drains the subscription, letting in-flight requests finish.
//
// Returns:
//   - error: Drain failure, or not started
func (s *Service) Stop() error {
	if s.sub == nil {
		return errors.New("service not started")
	}

	err := s.sub.Drain()
	s.sub = nil

	return err
}

func (s *Service) handle(msg *nats.Msg) {
	var req Request
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		s.reply(msg, Response{Error: "malformed request: " + err.Error()})

		return
	}

	result, err := s.engine.Distribute(context.Background(), req.Players)
	if err != nil {
		s.reply(msg, Response{Error: s.errorMessage(err)})

		return
	}

	games := make([][]string, len(result.Buckets))
	for i, bucket := range result.Buckets {
		games[i] = bucket.Names()
	}

	s.reply(msg, Response{Games: games, Message: result.Render()})
}

// errorMessage maps engine errors onto the messages the chat gateway forwards
// to end users verbatim.
func (s *Service) errorMessage(err error) string {
	switch {
	case errors.Is(err, types.ErrGroupTooLarge):
		return fmt.Sprintf("Groups can't have size over %d", s.engine.Capacity())
	case errors.Is(err, types.ErrDeadlineExceeded):
		return fmt.Sprintf("Timed out trying to find optimal solution after %d seconds",
			int(s.engine.SolveTimeout().Seconds()))
	default:
		return err.Error()
	}
}

func (s *Service) reply(msg *nats.Msg, resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.cfg.Logger.Error("failed to marshal reply", "error", err)

		return
	}

	if err := msg.Respond(data); err != nil {
		s.cfg.Logger.Error("failed to send reply", "subject", s.cfg.Subject, "error", err)
	}
}
