package tal3a

import (
	"testing"

	"github.com/mmynk/tal3a/internal/apperr"
	"github.com/mmynk/tal3a/internal/models"
)

func intPtr(v int) *int { return &v }

func TestCreateReview(t *testing.T) {
	env := setupTestEngine(t)
	event := env.createEvent(t, 5)
	env.join(t, event.ID, alice)

	_, err := env.engine.Reviews.Create(env.ctx, alice, CreateReviewInput{EventID: event.ID, Rating: 5})
	expectCode(t, err, apperr.CodeEventNotCompleted)

	env.complete(t, event.ID)

	review, err := env.engine.Reviews.Create(env.ctx, alice, CreateReviewInput{
		EventID:     event.ID,
		Rating:      4,
		Comment:     "Great pitch",
		VenueRating: intPtr(5),
	})
	if err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}
	if review.ID != 1 {
		t.Errorf("ID: expected 1, got %d", review.ID)
	}
	if !review.Verified {
		t.Errorf("expected review by a participant to be verified")
	}
	if review.OrganizationRating != 4 || review.ValueRating != 4 || review.VenueRating != 5 {
		t.Errorf("sub-ratings: expected 4/5/4, got %d/%d/%d",
			review.OrganizationRating, review.VenueRating, review.ValueRating)
	}

	_, err = env.engine.Reviews.Create(env.ctx, alice, CreateReviewInput{EventID: event.ID, Rating: 3})
	expectCode(t, err, apperr.CodeAlreadyReviewed)

	_, err = env.engine.Reviews.Create(env.ctx, bob, CreateReviewInput{EventID: event.ID, Rating: 3})
	expectCode(t, err, apperr.CodeNotParticipant)

	own, err := env.engine.Reviews.Create(env.ctx, organizer, CreateReviewInput{EventID: event.ID, Rating: 5})
	if err != nil {
		t.Fatalf("CreateReview by organizer failed: %v", err)
	}
	if own.Verified {
		t.Errorf("expected organizer review to be unverified")
	}
}

func TestCreateReviewValidation(t *testing.T) {
	env := setupTestEngine(t)
	event := env.createEvent(t, 5)
	env.join(t, event.ID, alice)
	env.complete(t, event.ID)

	for _, in := range []CreateReviewInput{
		{EventID: event.ID, Rating: 0},
		{EventID: event.ID, Rating: 6},
		{EventID: event.ID, Rating: 3, ValueRating: intPtr(9)},
	} {
		_, err := env.engine.Reviews.Create(env.ctx, alice, in)
		expectCode(t, err, apperr.CodeRatingOutOfRange)
	}

	_, err := env.engine.Reviews.Create(env.ctx, alice, CreateReviewInput{EventID: 99, Rating: 3})
	expectCode(t, err, apperr.CodeEventNotFound)
}

func TestAverageRating(t *testing.T) {
	env := setupTestEngine(t)
	event := env.createEvent(t, 5)

	avg, count, err := env.engine.Reviews.AverageRating(env.ctx, event.ID)
	if err != nil {
		t.Fatalf("AverageRating failed: %v", err)
	}
	if avg != "0.0" || count != 0 {
		t.Errorf("expected '0.0' over 0 reviews, got '%s' over %d", avg, count)
	}

	env.join(t, event.ID, alice, bob, carol)
	env.complete(t, event.ID)
	for user, rating := range map[string]int{string(alice): 5, string(bob): 4, string(carol): 3} {
		in := CreateReviewInput{EventID: event.ID, Rating: rating}
		if _, err := env.engine.Reviews.Create(env.ctx, models.Principal(user), in); err != nil {
			t.Fatalf("CreateReview(%s) failed: %v", user, err)
		}
	}

	avg, count, err = env.engine.Reviews.AverageRating(env.ctx, event.ID)
	if err != nil {
		t.Fatalf("AverageRating failed: %v", err)
	}
	if avg != "4.0" || count != 3 {
		t.Errorf("expected '4.0' over 3 reviews, got '%s' over %d", avg, count)
	}
}

func TestUpdateAndDeleteReview(t *testing.T) {
	env := setupTestEngine(t)
	event := env.createEvent(t, 5)
	env.join(t, event.ID, alice, bob)
	env.complete(t, event.ID)

	review, err := env.engine.Reviews.Create(env.ctx, alice, CreateReviewInput{EventID: event.ID, Rating: 2})
	if err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}

	_, err = env.engine.Reviews.Update(env.ctx, bob, review.ID, ReviewUpdate{Rating: intPtr(1)})
	expectCode(t, err, apperr.CodeNotReviewer)

	_, err = env.engine.Reviews.Update(env.ctx, alice, review.ID, ReviewUpdate{Rating: intPtr(7)})
	expectCode(t, err, apperr.CodeRatingOutOfRange)

	comment := "Changed my mind"
	updated, err := env.engine.Reviews.Update(env.ctx, alice, review.ID, ReviewUpdate{Rating: intPtr(5), Comment: &comment})
	if err != nil {
		t.Fatalf("UpdateReview failed: %v", err)
	}
	if updated.Rating != 5 || updated.Comment != comment {
		t.Errorf("expected rating 5 and comment '%s', got %d '%s'", comment, updated.Rating, updated.Comment)
	}
	if updated.OrganizationRating != 2 {
		t.Errorf("OrganizationRating: expected unchanged 2, got %d", updated.OrganizationRating)
	}

	err = env.engine.Reviews.Delete(env.ctx, bob, review.ID)
	expectCode(t, err, apperr.CodeNotReviewer)

	if err := env.engine.Reviews.Delete(env.ctx, alice, review.ID); err != nil {
		t.Fatalf("DeleteReview failed: %v", err)
	}
	_, err = env.engine.Reviews.Get(env.ctx, review.ID)
	expectCode(t, err, apperr.CodeReviewNotFound)

	reviews, err := env.engine.Reviews.ListForEvent(env.ctx, event.ID)
	if err != nil {
		t.Fatalf("ListEventReviews failed: %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("expected no reviews after delete, got %d", len(reviews))
	}

	if _, err := env.engine.Reviews.Create(env.ctx, alice, CreateReviewInput{EventID: event.ID, Rating: 4}); err != nil {
		t.Errorf("expected re-review after delete to succeed, got %v", err)
	}
}

func TestListReviewsNewestFirst(t *testing.T) {
	env := setupTestEngine(t)
	event := env.createEvent(t, 5)
	env.join(t, event.ID, alice, bob)
	env.complete(t, event.ID)

	first, err := env.engine.Reviews.Create(env.ctx, alice, CreateReviewInput{EventID: event.ID, Rating: 3})
	if err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}
	second, err := env.engine.Reviews.Create(env.ctx, bob, CreateReviewInput{EventID: event.ID, Rating: 4})
	if err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}

	reviews, err := env.engine.Reviews.ListForEvent(env.ctx, event.ID)
	if err != nil {
		t.Fatalf("ListEventReviews failed: %v", err)
	}
	if len(reviews) != 2 || reviews[0].ID != second.ID || reviews[1].ID != first.ID {
		t.Errorf("expected [%d %d], got %+v", second.ID, first.ID, reviews)
	}

	byAlice, err := env.engine.Reviews.ListByReviewer(env.ctx, alice)
	if err != nil {
		t.Fatalf("ListByReviewer failed: %v", err)
	}
	if len(byAlice) != 1 || byAlice[0].ID != first.ID {
		t.Errorf("expected alice's review %d, got %+v", first.ID, byAlice)
	}
}

func TestMarkHelpfulAndReport(t *testing.T) {
	env := setupTestEngine(t)
	event := env.createEvent(t, 5)
	env.join(t, event.ID, alice, bob)
	env.complete(t, event.ID)

	review, err := env.engine.Reviews.Create(env.ctx, alice, CreateReviewInput{EventID: event.ID, Rating: 4})
	if err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}

	_, err = env.engine.Reviews.MarkHelpful(env.ctx, alice, review.ID)
	expectCode(t, err, apperr.CodeOwnReview)

	marked, err := env.engine.Reviews.MarkHelpful(env.ctx, bob, review.ID)
	if err != nil {
		t.Fatalf("MarkHelpful failed: %v", err)
	}
	if marked.HelpfulCount != 1 {
		t.Errorf("HelpfulCount: expected 1, got %d", marked.HelpfulCount)
	}
	_, err = env.engine.Reviews.MarkHelpful(env.ctx, bob, review.ID)
	expectCode(t, err, apperr.CodeAlreadyMarked)

	reported, err := env.engine.Reviews.Report(env.ctx, carol, review.ID)
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if reported.ReportedCount != 1 || reported.HelpfulCount != 1 {
		t.Errorf("expected 1 helpful and 1 report, got %d and %d", reported.HelpfulCount, reported.ReportedCount)
	}
	_, err = env.engine.Reviews.Report(env.ctx, carol, review.ID)
	expectCode(t, err, apperr.CodeAlreadyReported)

	_, err = env.engine.Reviews.MarkHelpful(env.ctx, bob, 99)
	expectCode(t, err, apperr.CodeReviewNotFound)
}
