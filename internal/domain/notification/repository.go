// internal/domain/notification/repository.go
package notification

import "context"

// Journal persists delivery attempts for auditing. It is write-only:
// nothing is read back into State on restart.
type Journal interface {
	Append(ctx context.Context, entry *Entry) error
}
