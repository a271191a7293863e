package telegram

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rent_notification_engine/internal/app"
	"rent_notification_engine/internal/domain/calendar"
	"rent_notification_engine/internal/domain/notification"
	"rent_notification_engine/internal/domain/payment"
)

// FormatRunResult renders a run outcome for the admin chat.
func FormatRunResult(res app.CheckResult, runErr error) string {
	if errors.Is(runErr, app.ErrRunSkipped) {
		return "Check run skipped: another run is in progress."
	}

	var b strings.Builder
	switch {
	case runErr != nil:
		b.WriteString("Check run FAILED.\n")
	case res.Partial():
		b.WriteString("Check run finished with errors.\n")
	default:
		b.WriteString("Check run finished.\n")
	}
	fmt.Fprintf(&b, "Overdue payments: %d\n", res.OverduePayments)
	fmt.Fprintf(&b, "Lease expirations: %d", res.LeaseExpirations)
	if res.OverdueErr != nil {
		fmt.Fprintf(&b, "\nOverdue check error: %v", res.OverdueErr)
	}
	if res.LeaseErr != nil {
		fmt.Fprintf(&b, "\nLease check error: %v", res.LeaseErr)
	}
	return b.String()
}

// FormatRun renders a recorded check run.
func FormatRun(run *notification.Run) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Last run %s (%s) on %s: %s\n", run.RunID, run.Trigger, calendar.Format(run.RunDate), run.Status)
	fmt.Fprintf(&b, "Overdue payments: %d, lease expirations: %d", run.OverduePayments, run.LeaseExpirations)
	if run.FinishedAt.Valid {
		fmt.Fprintf(&b, "\nDuration: %s", run.FinishedAt.Time.Sub(run.StartedAt).Round(time.Millisecond))
	}
	if run.Error.Valid {
		fmt.Fprintf(&b, "\nError: %s", run.Error.String)
	}
	return b.String()
}

// FormatPayment renders a reconciled payment.
func FormatPayment(p *payment.Payment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Payment #%d: %s, due %s, status %s", p.ID, p.Amount.StringFixed(2), calendar.Format(p.DueDate), p.StoredStatus)
	if p.PaymentDate.Valid {
		fmt.Fprintf(&b, ", paid %s", calendar.Format(p.PaymentDate.Time))
	}
	if p.Tenant != nil {
		fmt.Fprintf(&b, "\nTenant: %s", p.Tenant.FullName())
	}
	return b.String()
}
