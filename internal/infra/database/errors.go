package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Custom errors
var (
	ErrOwnerNotFound         = fmt.Errorf("owner not found")
	ErrTenantNotFound        = fmt.Errorf("tenant not found")
	ErrPaymentNotFound       = fmt.Errorf("payment not found")
	ErrNotificationNotFound  = fmt.Errorf("notification not found")
	ErrDuplicateNotification = fmt.Errorf("duplicate notification (recipient_id, type, dedup_day, dedup_key)")
	ErrRunNotFound           = fmt.Errorf("check run not found")
)

const pqUniqueViolation = "23505"

// isUniqueViolation recognises unique-constraint failures from every driver we run on.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
