// Package docstore is the document-collection variant of the remote store.
// Records are JSON documents under per-user paths (users/{uid}/properties,
// users/{uid}/guides) with a set per collection for listing; creates get a
// server-assigned UUID. Any backend error surfaces as ErrRemoteUnavailable.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/AnthonyM972321/LuxuryBot/internal/adapters/observability"
	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
)

type Store struct {
	c   *redis.Client
	log zerolog.Logger
}

func New(addr, pass string, db int, log zerolog.Logger) *Store {
	return &Store{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		log: log,
	}
}

func collectionKey(uid, sub string) string { return "users/" + uid + "/" + sub }

func docKey(uid, sub, id string) string { return "users/" + uid + "/" + sub + "/" + id }

func (s *Store) CreateProperty(ctx context.Context, uid string, p domain.Property) (string, error) {
	id := uuid.NewString()
	p.ID = id
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("%w: marshal property: %v", domain.ErrRemoteUnavailable, err)
	}
	pipe := s.c.TxPipeline()
	pipe.Set(ctx, docKey(uid, "properties", id), raw, 0)
	pipe.SAdd(ctx, collectionKey(uid, "properties"), id)
	_, err = pipe.Exec(ctx)
	observability.ObserveRemote("docstore", "create_property", err)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	return id, nil
}

func (s *Store) ListProperties(ctx context.Context, uid string) ([]domain.Property, error) {
	ids, err := s.c.SMembers(ctx, collectionKey(uid, "properties")).Result()
	observability.ObserveRemote("docstore", "list_properties", err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	out := make([]domain.Property, 0, len(ids))
	for _, id := range ids {
		raw, err := s.c.Get(ctx, docKey(uid, "properties", id)).Bytes()
		if err == redis.Nil {
			continue // id in the set without a document: skip
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
		}
		var p domain.Property
		if err := json.Unmarshal(raw, &p); err != nil {
			s.log.Warn().Str("id", id).Err(err).Msg("skipping unreadable property document")
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Store) CreateOrReplaceGuide(ctx context.Context, uid string, g domain.Guide) error {
	g.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	id := domain.GuideKey(g.PropertyID, g.Language)
	raw, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("%w: marshal guide: %v", domain.ErrRemoteUnavailable, err)
	}
	pipe := s.c.TxPipeline()
	pipe.Set(ctx, docKey(uid, "guides", id), raw, 0)
	pipe.SAdd(ctx, collectionKey(uid, "guides"), id)
	_, err = pipe.Exec(ctx)
	observability.ObserveRemote("docstore", "upsert_guide", err)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	return nil
}

func (s *Store) ListGuides(ctx context.Context, uid string) ([]domain.Guide, error) {
	ids, err := s.c.SMembers(ctx, collectionKey(uid, "guides")).Result()
	observability.ObserveRemote("docstore", "list_guides", err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	out := make([]domain.Guide, 0, len(ids))
	for _, id := range ids {
		raw, err := s.c.Get(ctx, docKey(uid, "guides", id)).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
		}
		var g domain.Guide
		if err := json.Unmarshal(raw, &g); err != nil {
			s.log.Warn().Str("id", id).Err(err).Msg("skipping unreadable guide document")
			continue
		}
		out = append(out, g)
	}
	return out, nil
}
