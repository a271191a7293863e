// internal/domain/notification/shared_types.go
package notification

// Type tags what condition a notification reports.
type Type string

const (
	TypeOverduePayment  Type = "overdue_payment"
	TypeLeaseExpiration Type = "lease_expiration"
)

// LeaseWarningThresholds are the fixed day offsets before a lease end that raise a warning.
var LeaseWarningThresholds = []int{30, 60, 90}

// RunStatus is the outcome of a check run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "RUNNING"
	RunStatusSucceeded RunStatus = "SUCCEEDED"
	RunStatusPartial   RunStatus = "PARTIAL" // one runner failed, the other completed
	RunStatusFailed    RunStatus = "FAILED"
)
