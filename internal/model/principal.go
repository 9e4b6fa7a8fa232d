package model

import "github.com/google/uuid"

// Principal identifies the authenticated caller on guarded write routes.
type Principal struct {
	UserID uuid.UUID
	Role   string
}
