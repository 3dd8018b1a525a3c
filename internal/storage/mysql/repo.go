// Package mysql is the relational variant of the remote store: a
// compatibility shim that emulates the document store's per-user collections
// over {collection}_{subcollection} tables. Identifiers are auto-increment
// integers normalized to strings at this boundary.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/AnthonyM972321/LuxuryBot/internal/adapters/observability"
	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func remoteErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
}

func (r *Repo) CreateProperty(ctx context.Context, uid string, p domain.Property) (string, error) {
	var platform any
	if p.Platform != "" {
		platform = p.Platform
	}
	res, err := r.db.ExecContext(ctx, insertPropertySQL,
		uid, p.Name, string(p.Type), p.Address,
		p.Bedrooms, p.Bathrooms, p.Capacity, string(p.Status),
		p.Imported, platform, p.CreatedAt,
	)
	observability.ObserveRemote("mysql", "create_property", err)
	if err != nil {
		return "", remoteErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", remoteErr(err)
	}
	return strconv.FormatInt(id, 10), nil
}

func (r *Repo) ListProperties(ctx context.Context, uid string) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, selectPropertiesSQL, uid)
	observability.ObserveRemote("mysql", "list_properties", err)
	if err != nil {
		return nil, remoteErr(err)
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		var (
			id       int64
			p        domain.Property
			typ      string
			status   string
			platform sql.NullString
		)
		if err := rows.Scan(&id, &p.Name, &typ, &p.Address,
			&p.Bedrooms, &p.Bathrooms, &p.Capacity, &status,
			&p.Imported, &platform, &p.CreatedAt); err != nil {
			return nil, remoteErr(err)
		}
		p.ID = strconv.FormatInt(id, 10)
		p.Type = domain.PropertyType(typ)
		p.Status = domain.PropertyStatus(status)
		if platform.Valid {
			p.Platform = platform.String
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteErr(err)
	}
	return out, nil
}

func (r *Repo) CreateOrReplaceGuide(ctx context.Context, uid string, g domain.Guide) error {
	content, err := json.Marshal(g.Content)
	if err != nil {
		return remoteErr(err)
	}
	_, err = r.db.ExecContext(ctx, upsertGuideSQL, uid, g.PropertyID, g.Language, string(content))
	observability.ObserveRemote("mysql", "upsert_guide", err)
	if err != nil {
		return remoteErr(err)
	}
	return nil
}

func (r *Repo) ListGuides(ctx context.Context, uid string) ([]domain.Guide, error) {
	rows, err := r.db.QueryContext(ctx, selectGuidesSQL, uid)
	observability.ObserveRemote("mysql", "list_guides", err)
	if err != nil {
		return nil, remoteErr(err)
	}
	defer rows.Close()

	var out []domain.Guide
	for rows.Next() {
		var (
			g         domain.Guide
			content   []byte
			updatedAt sql.NullTime
		)
		if err := rows.Scan(&g.PropertyID, &g.Language, &content, &updatedAt); err != nil {
			return nil, remoteErr(err)
		}
		if err := json.Unmarshal(content, &g.Content); err != nil {
			return nil, remoteErr(err)
		}
		if updatedAt.Valid {
			g.UpdatedAt = updatedAt.Time.UTC().Format(time.RFC3339)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteErr(err)
	}
	return out, nil
}
