// internal/infra/database/gorm_notification_repository.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rent_notification_engine/internal/domain/notification"
)

const defaultListLimit = 50

type GormNotificationRepository struct {
	base
}

func NewGormNotificationRepository(db *gorm.DB, queryTimeout time.Duration) *GormNotificationRepository {
	return &GormNotificationRepository{base: newBase(db, queryTimeout)}
}

// --- Notification Methods ---

func (r *GormNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if err := db.Create(n).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateNotification
		}
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

func (r *GormNotificationRepository) GetByID(ctx context.Context, id int64) (*notification.Notification, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	n := &notification.Notification{}
	if err := db.First(n, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("error getting notification by ID: %w", err)
	}
	return n, nil
}

func (r *GormNotificationRepository) ExistsForKey(ctx context.Context, key notification.DedupKey) (bool, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var count int64
	err := db.Model(&notification.Notification{}).
		Where("recipient_id = ? AND type = ? AND dedup_day = ? AND dedup_key = ?",
			key.RecipientID, key.Type, key.DayString(), key.Discriminator).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("error checking notification dedup key: %w", err)
	}
	return count > 0, nil
}

func (r *GormNotificationRepository) ListByRecipient(ctx context.Context, recipientID int64, limit int) ([]*notification.Notification, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	if limit <= 0 {
		limit = defaultListLimit
	}
	list := make([]*notification.Notification, 0)
	err := db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("error listing notifications for recipient %d: %w", recipientID, err)
	}
	return list, nil
}

func (r *GormNotificationRepository) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var count int64
	err := db.Model(&notification.Notification{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead sets read_at once; an already-read notification keeps its first read time.
func (r *GormNotificationRepository) MarkRead(ctx context.Context, recipientID, id int64) error {
	if _, err := r.getOwned(ctx, recipientID, id); err != nil {
		return err
	}

	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Model(&notification.Notification{}).
		Where("id = ? AND recipient_id = ? AND read_at IS NULL", id, recipientID).
		UpdateColumn("read_at", sql.NullTime{Time: time.Now(), Valid: true}).Error
	if err != nil {
		return fmt.Errorf("error marking notification %d read: %w", id, err)
	}
	return nil
}

func (r *GormNotificationRepository) MarkUnread(ctx context.Context, recipientID, id int64) error {
	if _, err := r.getOwned(ctx, recipientID, id); err != nil {
		return err
	}

	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Model(&notification.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		UpdateColumn("read_at", sql.NullTime{}).Error
	if err != nil {
		return fmt.Errorf("error marking notification %d unread: %w", id, err)
	}
	return nil
}

func (r *GormNotificationRepository) Delete(ctx context.Context, recipientID, id int64) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	res := db.Where("id = ? AND recipient_id = ?", id, recipientID).Delete(&notification.Notification{})
	if res.Error != nil {
		return fmt.Errorf("error deleting notification %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// getOwned scopes lookups to the recipient so one owner can never touch another's rows.
func (r *GormNotificationRepository) getOwned(ctx context.Context, recipientID, id int64) (*notification.Notification, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	n := &notification.Notification{}
	err := db.Where("id = ? AND recipient_id = ?", id, recipientID).First(n).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, fmt.Errorf("error getting notification %d: %w", id, err)
	}
	return n, nil
}

// --- Check Run Methods ---

func (r *GormNotificationRepository) CreateRun(ctx context.Context, run *notification.Run) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	if err := db.Create(run).Error; err != nil {
		return fmt.Errorf("error creating check run: %w", err)
	}
	return nil
}

func (r *GormNotificationRepository) FinishRun(ctx context.Context, run *notification.Run) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Model(&notification.Run{}).Where("id = ?", run.ID).Updates(map[string]interface{}{
		"status":            run.Status,
		"overdue_payments":  run.OverduePayments,
		"lease_expirations": run.LeaseExpirations,
		"error":             run.Error,
		"finished_at":       run.FinishedAt,
	}).Error
	if err != nil {
		return fmt.Errorf("error finishing check run %s: %w", run.RunID, err)
	}
	return nil
}

func (r *GormNotificationRepository) GetLatestRun(ctx context.Context) (*notification.Run, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	run := &notification.Run{}
	err := db.Order("started_at DESC, id DESC").First(run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("error getting latest check run: %w", err)
	}
	return run, nil
}
