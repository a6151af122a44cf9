package tal3a

import (
	"context"
	"errors"
	"slices"
	"strconv"

	"github.com/mmynk/tal3a/internal/apperr"
	"github.com/mmynk/tal3a/internal/ids"
	"github.com/mmynk/tal3a/internal/index"
	"github.com/mmynk/tal3a/internal/models"
	"github.com/mmynk/tal3a/internal/storage"
	"github.com/mmynk/tal3a/internal/validate"
)

const (
	voteHelpful = "helpful"
	voteReport  = "report"
)

// ReviewManager collects feedback on completed events.
type ReviewManager struct {
	*base
}

func loadReview(tx storage.Tx, id uint64) (*models.Review, error) {
	var review models.Review
	err := storage.GetJSON(tx, storage.ReviewKey(id), &review)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.Newf(apperr.CodeReviewNotFound, "review %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func saveReview(tx storage.Tx, review *models.Review) error {
	return storage.PutJSON(tx, storage.ReviewKey(review.ID), review)
}

// CreateReviewInput carries a new review. Omitted sub-ratings take the
// overall rating.
type CreateReviewInput struct {
	EventID            uint64
	Rating             int
	Comment            string
	OrganizationRating *int
	VenueRating        *int
	ValueRating        *int
}

func subRating(sub *int, overall int) (uint8, error) {
	if sub == nil {
		return uint8(overall), nil
	}
	if err := validate.Rating(*sub); err != nil {
		return 0, err
	}
	return uint8(*sub), nil
}

// Create records the caller's review of a completed event they took part in
// or organized. Each principal reviews an event at most once.
func (m *ReviewManager) Create(ctx context.Context, caller models.Principal, in CreateReviewInput) (*models.Review, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if err := validate.Rating(in.Rating); err != nil {
		return nil, err
	}
	if err := validate.ReviewComment(in.Comment); err != nil {
		return nil, err
	}
	review := &models.Review{
		EventID:    in.EventID,
		ReviewerID: caller,
		Rating:     uint8(in.Rating),
		Comment:    in.Comment,
	}
	var err error
	if review.OrganizationRating, err = subRating(in.OrganizationRating, in.Rating); err != nil {
		return nil, err
	}
	if review.VenueRating, err = subRating(in.VenueRating, in.Rating); err != nil {
		return nil, err
	}
	if review.ValueRating, err = subRating(in.ValueRating, in.Rating); err != nil {
		return nil, err
	}
	now := m.clock()
	review.CreatedAt = now
	review.UpdatedAt = now

	err = m.update(ctx, "create review", func(tx storage.Tx) error {
		event, err := loadEvent(tx, in.EventID)
		if err != nil {
			return err
		}
		if event.Status != models.EventStatusCompleted {
			return apperr.New(apperr.CodeEventNotCompleted, "only completed events can be reviewed")
		}
		member, err := isMember(tx, in.EventID, caller)
		if err != nil {
			return err
		}
		if !member && !event.IsCreator(caller) {
			return apperr.New(apperr.CodeNotParticipant, "only participants can review this event")
		}
		reviewed, err := storage.Exists(tx, storage.ReviewedKey(in.EventID, string(caller)))
		if err != nil {
			return err
		}
		if reviewed {
			return apperr.New(apperr.CodeAlreadyReviewed, "already reviewed this event")
		}

		id, err := ids.Next(tx, ids.KindReview)
		if err != nil {
			return err
		}
		review.ID = id
		review.Verified = member
		if err := saveReview(tx, review); err != nil {
			return err
		}
		if err := storage.PutJSON(tx, storage.ReviewedKey(in.EventID, string(caller)), id); err != nil {
			return err
		}
		if err := index.Append(tx, index.EventReviews(in.EventID), id); err != nil {
			return err
		}
		return index.Append(tx, index.ByReviewer(caller), id)
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info("review created", "review_id", review.ID, "event_id", review.EventID, "rating", review.Rating)
	return review, nil
}

// ReviewUpdate lists the fields to change. Nil fields are left as they are.
type ReviewUpdate struct {
	Rating             *int
	Comment            *string
	OrganizationRating *int
	VenueRating        *int
	ValueRating        *int
}

func (u *ReviewUpdate) apply(review *models.Review) error {
	for _, field := range []struct {
		value  *int
		target *uint8
	}{
		{u.Rating, &review.Rating},
		{u.OrganizationRating, &review.OrganizationRating},
		{u.VenueRating, &review.VenueRating},
		{u.ValueRating, &review.ValueRating},
	} {
		if field.value == nil {
			continue
		}
		if err := validate.Rating(*field.value); err != nil {
			return err
		}
		*field.target = uint8(*field.value)
	}
	if u.Comment != nil {
		if err := validate.ReviewComment(*u.Comment); err != nil {
			return err
		}
		review.Comment = *u.Comment
	}
	return nil
}

// Update edits a review. Only its author may.
func (m *ReviewManager) Update(ctx context.Context, caller models.Principal, reviewID uint64, changes ReviewUpdate) (*models.Review, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	now := m.clock()

	var review *models.Review
	err := m.update(ctx, "update review", func(tx storage.Tx) error {
		var err error
		review, err = loadReview(tx, reviewID)
		if err != nil {
			return err
		}
		if review.ReviewerID != caller {
			return apperr.New(apperr.CodeNotReviewer, "only the reviewer can update the review")
		}
		if err := changes.apply(review); err != nil {
			return err
		}
		review.UpdatedAt = now
		return saveReview(tx, review)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review. Only its author may. The author can review the
// event again afterwards.
func (m *ReviewManager) Delete(ctx context.Context, caller models.Principal, reviewID uint64) error {
	if err := requireCaller(caller); err != nil {
		return err
	}
	return m.update(ctx, "delete review", func(tx storage.Tx) error {
		review, err := loadReview(tx, reviewID)
		if err != nil {
			return err
		}
		if review.ReviewerID != caller {
			return apperr.New(apperr.CodeNotReviewer, "only the reviewer can delete the review")
		}
		if err := tx.Delete(storage.ReviewKey(reviewID)); err != nil {
			return err
		}
		if err := tx.Delete(storage.ReviewedKey(review.EventID, string(caller))); err != nil {
			return err
		}
		if err := index.Remove(tx, index.EventReviews(review.EventID), reviewID); err != nil {
			return err
		}
		return index.Remove(tx, index.ByReviewer(caller), reviewID)
	})
}

// Get returns one review.
func (m *ReviewManager) Get(ctx context.Context, reviewID uint64) (*models.Review, error) {
	var review *models.Review
	err := m.view(ctx, "get review", func(tx storage.Tx) error {
		var err error
		review, err = loadReview(tx, reviewID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func listReviews(tx storage.Tx, key index.Key) ([]models.Review, error) {
	reviewIDs, err := index.List(tx, key)
	if err != nil {
		return nil, err
	}
	reviews := make([]models.Review, 0, len(reviewIDs))
	for _, id := range reviewIDs {
		review, err := loadReview(tx, id)
		if apperr.IsCode(err, apperr.CodeReviewNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *review)
	}
	return reviews, nil
}

// ListForEvent returns an event's reviews, newest first.
func (m *ReviewManager) ListForEvent(ctx context.Context, eventID uint64) ([]models.Review, error) {
	var reviews []models.Review
	err := m.view(ctx, "list event reviews", func(tx storage.Tx) error {
		var err error
		reviews, err = listReviews(tx, index.EventReviews(eventID))
		return err
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(reviews)
	return reviews, nil
}

// ListByReviewer returns the reviews written by p, newest first.
func (m *ReviewManager) ListByReviewer(ctx context.Context, p models.Principal) ([]models.Review, error) {
	var reviews []models.Review
	err := m.view(ctx, "list reviewer reviews", func(tx storage.Tx) error {
		var err error
		reviews, err = listReviews(tx, index.ByReviewer(p))
		return err
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(reviews)
	return reviews, nil
}

// vote records one helpful mark or report per principal per review.
func (m *ReviewManager) vote(ctx context.Context, caller models.Principal, reviewID uint64, kind string) (*models.Review, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	var review *models.Review
	err := m.update(ctx, kind+" review", func(tx storage.Tx) error {
		var err error
		review, err = loadReview(tx, reviewID)
		if err != nil {
			return err
		}
		if review.ReviewerID == caller {
			return apperr.Newf(apperr.CodeOwnReview, "cannot %s your own review", kind)
		}
		key := storage.VoteKey(kind, reviewID, string(caller))
		voted, err := storage.Exists(tx, key)
		if err != nil {
			return err
		}
		switch {
		case voted && kind == voteHelpful:
			return apperr.New(apperr.CodeAlreadyMarked, "already marked this review as helpful")
		case voted:
			return apperr.New(apperr.CodeAlreadyReported, "already reported this review")
		}
		if err := tx.Put(key, []byte{1}); err != nil {
			return err
		}
		if kind == voteHelpful {
			review.HelpfulCount++
		} else {
			review.ReportedCount++
		}
		return saveReview(tx, review)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// MarkHelpful counts the caller's helpful vote on a review.
func (m *ReviewManager) MarkHelpful(ctx context.Context, caller models.Principal, reviewID uint64) (*models.Review, error) {
	return m.vote(ctx, caller, reviewID, voteHelpful)
}

// Report counts the caller's report of a review.
func (m *ReviewManager) Report(ctx context.Context, caller models.Principal, reviewID uint64) (*models.Review, error) {
	review, err := m.vote(ctx, caller, reviewID, voteReport)
	if err == nil {
		m.logger.Warn("review reported", "review_id", reviewID, "reported_count", review.ReportedCount)
	}
	return review, err
}

// AverageRating returns the mean overall rating of an event's reviews with
// one decimal place, rounding halves up. It is "0.0" when there are none.
func (m *ReviewManager) AverageRating(ctx context.Context, eventID uint64) (string, int, error) {
	var reviews []models.Review
	err := m.view(ctx, "average rating", func(tx storage.Tx) error {
		var err error
		reviews, err = listReviews(tx, index.EventReviews(eventID))
		return err
	})
	if err != nil {
		return "", 0, err
	}
	return FormatAverage(reviews), len(reviews), nil
}

// FormatAverage renders the mean rating of reviews as "X.Y".
func FormatAverage(reviews []models.Review) string {
	if len(reviews) == 0 {
		return "0.0"
	}
	var sum uint64
	for _, r := range reviews {
		sum += uint64(r.Rating)
	}
	n := uint64(len(reviews))
	tenths := (sum*20 + n) / (2 * n)
	return strconv.FormatUint(tenths/10, 10) + "." + strconv.FormatUint(tenths%10, 10)
}
