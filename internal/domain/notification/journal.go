// internal/domain/notification/journal.go
package notification

import (
	"database/sql"
	"time"
)

// Entry is one delivery attempt written to the notification journal.
// Corresponds to the 'notification_journal' table.
type Entry struct {
	ID        int64
	ChatID    int64
	Text      string
	Delivered bool
	Error     sql.NullString // delivery error, if any
	CreatedAt time.Time
}
