package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"skilllink/internal/model"
	"skilllink/pkg/db"
)

type ReviewRepository struct {
	db     *db.Session
	logger *zap.Logger
}

func NewReviewRepository(session *db.Session, logger *zap.Logger) *ReviewRepository {
	return &ReviewRepository{db: session, logger: logger}
}

// ListForReviewee returns reviews received by a user, newest first.
func (r *ReviewRepository) ListForReviewee(ctx context.Context, revieweeID int64) ([]model.Review, error) {
	query := `
        SELECT r.rating, COALESCE(r.feedback, ''), u.username AS reviewer
        FROM review r
        JOIN users u ON r.reviewer_id = u.user_id
        WHERE r.reviewee_id = $1
        ORDER BY r.review_id DESC
    `
	reviews := make([]model.Review, 0)
	err := r.db.Select(ctx, "reviews.for_reviewee", query, []any{revieweeID}, func(rows pgx.Rows) error {
		var rv model.Review
		if err := rows.Scan(&rv.Rating, &rv.Feedback, &rv.Reviewer); err != nil {
			return err
		}
		reviews = append(reviews, rv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
