// internal/domain/homework/record.go
package homework

// Keys of the homework status endpoint payload.
const (
	KeyHomeworks   = "homeworks"
	KeyCurrentDate = "current_date"
	KeyName        = "homework_name"
	KeyStatus      = "status"
)

// Record is a single homework entry as decoded from the endpoint.
// Fields are looked up by key so that absent fields can be told apart from empty ones.
type Record map[string]any

// Status codes reported by the endpoint.
const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)
