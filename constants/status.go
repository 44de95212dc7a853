package constants

// ResultStatus is the value written under the reserved "status" key of every result.
type ResultStatus string

// Stable values (the calling application matches on these exact strings).
const (
	StatusSuccess ResultStatus = "success"
	StatusError   ResultStatus = "error"
)

// Reserved keys merged into every result object.
const (
	KeyStatus  = "status"
	KeyMessage = "message"
)

// IsReservedKey reports whether name collides with a reserved result key.
func IsReservedKey(name string) bool {
	return name == KeyStatus || name == KeyMessage
}
