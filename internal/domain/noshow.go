package domain

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// ClientNoShowRecord tracks missed appointments per client. The counter only
// grows, and blocking is sticky: once set it is never cleared by the
// scheduling core (unblocking is an administrative action).
type ClientNoShowRecord struct {
	bun.BaseModel `bun:"table:client_no_show_records,alias:cnr"`

	ClientID    string    `bun:"client_id,pk"`
	NoShowCount int       `bun:"no_show_count,notnull"`
	IsBlocked   bool      `bun:"is_blocked,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}

func (r *ClientNoShowRecord) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.InsertQuery, *bun.UpdateQuery:
		r.UpdatedAt = time.Now().UTC()
	}
	return nil
}
