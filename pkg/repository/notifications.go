package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/condoboard/core/pkg/models"
)

// Notifications provides access to the notifications table
type Notifications struct {
	pool *pgxpool.Pool
}

func NewNotifications(pool *pgxpool.Pool) *Notifications {
	return &Notifications{pool: pool}
}

// Create inserts a notification with status sent
func (r *Notifications) Create(ctx context.Context, n *models.Notification) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO notifications (user_id, unit_id, title, message, kind, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, n.UserID, n.UnitID, n.Title, n.Message, n.Kind, models.NotificationStatusSent).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification for user %d: %w", n.UserID, err)
	}
	n.Status = models.NotificationStatusSent
	return nil
}

// ExistsSimilarSince reports whether a notification with the given title whose
// message contains the substring was already sent to the user after since.
// The substring match against free text mirrors how the overdue sweep links a
// notification back to its payment; there is no structured reference.
func (r *Notifications) ExistsSimilarSince(ctx context.Context, userID int64, title, messageSubstring string, since time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id = $1
			  AND title = $2
			  AND message LIKE '%' || $3 || '%'
			  AND created_at >= $4
		)
	`, userID, title, messageSubstring, since).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check similar notifications for user %d: %w", userID, err)
	}
	return exists, nil
}
