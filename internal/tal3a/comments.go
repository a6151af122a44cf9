package tal3a

import (
	"context"
	"errors"

	"github.com/mmynk/tal3a/internal/apperr"
	"github.com/mmynk/tal3a/internal/ids"
	"github.com/mmynk/tal3a/internal/index"
	"github.com/mmynk/tal3a/internal/models"
	"github.com/mmynk/tal3a/internal/storage"
	"github.com/mmynk/tal3a/internal/validate"
)

// CommentManager runs the discussion thread attached to each event.
type CommentManager struct {
	*base
}

func loadComment(tx storage.Tx, id uint64) (*models.Comment, error) {
	var comment models.Comment
	err := storage.GetJSON(tx, storage.CommentKey(id), &comment)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, apperr.Newf(apperr.CodeCommentNotFound, "comment %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create posts a comment on an event, optionally as a reply to another
// comment on the same event.
func (m *CommentManager) Create(ctx context.Context, caller models.Principal, eventID uint64, content string, parentID *uint64) (*models.Comment, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if err := validate.CommentContent(content); err != nil {
		return nil, err
	}
	now := m.clock()
	comment := &models.Comment{
		EventID:         eventID,
		UserID:          caller,
		Content:         content,
		ParentCommentID: parentID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := m.update(ctx, "create comment", func(tx storage.Tx) error {
		if _, err := loadEvent(tx, eventID); err != nil {
			return err
		}
		if parentID != nil {
			parent, err := loadComment(tx, *parentID)
			if err != nil {
				return err
			}
			if parent.EventID != eventID {
				return apperr.New(apperr.CodeParentCommentMismatch, "parent comment belongs to another event")
			}
		}
		id, err := ids.Next(tx, ids.KindComment)
		if err != nil {
			return err
		}
		comment.ID = id
		if err := storage.PutJSON(tx, storage.CommentKey(id), comment); err != nil {
			return err
		}
		return index.Append(tx, index.EventComments(eventID), id)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// Update replaces the content of the caller's own comment.
func (m *CommentManager) Update(ctx context.Context, caller models.Principal, commentID uint64, content string) (*models.Comment, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if err := validate.CommentContent(content); err != nil {
		return nil, err
	}
	now := m.clock()

	var comment *models.Comment
	err := m.update(ctx, "update comment", func(tx storage.Tx) error {
		var err error
		comment, err = loadComment(tx, commentID)
		if err != nil {
			return err
		}
		if comment.UserID != caller {
			return apperr.New(apperr.CodeNotAuthor, "only the author can edit the comment")
		}
		comment.Content = content
		comment.UpdatedAt = now
		return storage.PutJSON(tx, storage.CommentKey(commentID), comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the caller's own comment. Replies to it stay in the thread.
func (m *CommentManager) Delete(ctx context.Context, caller models.Principal, commentID uint64) error {
	if err := requireCaller(caller); err != nil {
		return err
	}
	return m.update(ctx, "delete comment", func(tx storage.Tx) error {
		comment, err := loadComment(tx, commentID)
		if err != nil {
			return err
		}
		if comment.UserID != caller {
			return apperr.New(apperr.CodeNotAuthor, "only the author can delete the comment")
		}
		if err := tx.Delete(storage.CommentKey(commentID)); err != nil {
			return err
		}
		return index.Remove(tx, index.EventComments(comment.EventID), commentID)
	})
}

// List returns an event's comments in posting order.
func (m *CommentManager) List(ctx context.Context, eventID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	err := m.view(ctx, "list comments", func(tx storage.Tx) error {
		if _, err := loadEvent(tx, eventID); err != nil {
			return err
		}
		commentIDs, err := index.List(tx, index.EventComments(eventID))
		if err != nil {
			return err
		}
		comments = make([]models.Comment, 0, len(commentIDs))
		for _, id := range commentIDs {
			comment, err := loadComment(tx, id)
			if apperr.IsCode(err, apperr.CodeCommentNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			comments = append(comments, *comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}
