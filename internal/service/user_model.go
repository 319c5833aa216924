package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User is a registered account. The password hash never leaves storage.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}
