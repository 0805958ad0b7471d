package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an admin login session. There is no user table; only the
// admin authenticates, against a hash injected through configuration.
type Session struct {
	BaseSimple
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
