// Package subscriber keeps the institute, batch and user replicas in sync
// with the events the directory service publishes on redis.
package subscriber

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/lshigami/examcore/internal/model"
	"github.com/lshigami/examcore/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	InstituteChannel = "institute-events"
	BatchChannel     = "batch-events"
	UserChannel      = "user-events"
)

const (
	actionCreated = "created"
	actionUpdated = "updated"
	actionDeleted = "deleted"
)

var (
	ErrMalformed     = errors.New("malformed event payload")
	ErrUnknownAction = errors.New("unknown event action")
)

type Subscriber struct {
	client redis.UniversalClient
	mirror repository.MirrorRepository

	mu     sync.Mutex
	pubsub *redis.PubSub
	done   chan struct{}
}

func New(client redis.UniversalClient, mirror repository.MirrorRepository) *Subscriber {
	return &Subscriber{client: client, mirror: mirror}
}

// Start subscribes to every replication channel and consumes messages until Stop.
func (s *Subscriber) Start(ctx context.Context) error {
	ps := s.client.Subscribe(ctx, InstituteChannel, BatchChannel, UserChannel)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return fmt.Errorf("subscribe to replication channels: %w", err)
	}

	s.mu.Lock()
	s.pubsub = ps
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	log.Info().Strs("channels", []string{InstituteChannel, BatchChannel, UserChannel}).Msg("Replication subscriber started")
	go func() {
		defer close(done)
		for msg := range ps.Channel() {
			if err := s.Apply(context.Background(), msg.Channel, msg.Payload); err != nil {
				log.Error().Err(err).Str("channel", msg.Channel).Str("payload", msg.Payload).Msg("Error processing replication event")
			}
		}
	}()
	return nil
}

func (s *Subscriber) Stop(ctx context.Context) error {
	s.mu.Lock()
	ps, done := s.pubsub, s.done
	s.pubsub = nil
	s.mu.Unlock()
	if ps == nil {
		return nil
	}
	if err := ps.Close(); err != nil {
		return err
	}
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	log.Info().Msg("Replication subscriber stopped")
	return nil
}

// Apply handles one {action, data} event from channel.
func (s *Subscriber) Apply(ctx context.Context, channel, payload string) error {
	if !gjson.Valid(payload) {
		return ErrMalformed
	}
	event := gjson.Parse(payload)
	action := event.Get("action").String()
	data := event.Get("data")
	if !data.IsObject() {
		return fmt.Errorf("%w: data is not an object", ErrMalformed)
	}

	switch channel {
	case InstituteChannel:
		return s.applyInstitute(ctx, action, data)
	case BatchChannel:
		return s.applyBatch(ctx, action, data)
	case UserChannel:
		return s.applyUser(ctx, action, data)
	default:
		log.Warn().Str("channel", channel).Msg("Event on unexpected channel ignored")
		return nil
	}
}

func (s *Subscriber) applyInstitute(ctx context.Context, action string, data gjson.Result) error {
	id := uint(data.Get("id").Uint())
	if id == 0 {
		return fmt.Errorf("%w: institute id missing", ErrMalformed)
	}
	switch action {
	case actionCreated, actionUpdated:
		if err := s.mirror.UpsertInstitute(ctx, &model.Institute{ID: id, Name: data.Get("name").String()}); err != nil {
			return err
		}
	case actionDeleted:
		if err := s.mirror.DeleteInstitute(ctx, id); err != nil {
			return err
		}
	default:
		log.Warn().Str("action", action).Uint("instituteID", id).Msg("Unknown institute event action")
		return ErrUnknownAction
	}
	log.Info().Str("action", action).Uint("instituteID", id).Msg("Institute replica synced")
	return nil
}

func (s *Subscriber) applyBatch(ctx context.Context, action string, data gjson.Result) error {
	id := uint(data.Get("id").Uint())
	if id == 0 {
		return fmt.Errorf("%w: batch id missing", ErrMalformed)
	}
	switch action {
	case actionCreated, actionUpdated:
		b := &model.Batch{ID: id, InstituteID: uint(data.Get("instituteId").Uint()), Name: data.Get("name").String()}
		if err := s.mirror.UpsertBatch(ctx, b); err != nil {
			return err
		}
	case actionDeleted:
		if err := s.mirror.DeleteBatch(ctx, id); err != nil {
			return err
		}
	default:
		log.Warn().Str("action", action).Uint("batchID", id).Msg("Unknown batch event action")
		return ErrUnknownAction
	}
	log.Info().Str("action", action).Uint("batchID", id).Msg("Batch replica synced")
	return nil
}

func (s *Subscriber) applyUser(ctx context.Context, action string, data gjson.Result) error {
	id, err := uuid.Parse(data.Get("userId").String())
	if err != nil {
		return fmt.Errorf("%w: userId: %v", ErrMalformed, err)
	}
	switch action {
	case actionCreated, actionUpdated:
		u := &model.User{
			UserID:      id,
			Username:    data.Get("username").String(),
			Email:       data.Get("email").String(),
			Role:        data.Get("role").String(),
			InstituteID: optionalUint(data.Get("instituteId")),
			BatchID:     optionalUint(data.Get("batchId")),
		}
		if err := s.mirror.UpsertUser(ctx, u); err != nil {
			return err
		}
	case actionDeleted:
		if err := s.mirror.DeleteUser(ctx, id); err != nil {
			return err
		}
	default:
		log.Warn().Str("action", action).Str("userID", id.String()).Msg("Unknown user event action")
		return ErrUnknownAction
	}
	log.Info().Str("action", action).Str("userID", id.String()).Msg("User replica synced")
	return nil
}

func optionalUint(r gjson.Result) *uint {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	v := uint(r.Uint())
	return &v
}
