package storage

import (
	"fmt"
	"net/url"
)

// Numeric IDs are zero-padded so keys sort in ID order in backends that
// keep keys ordered.
func padID(id uint64) string {
	return fmt.Sprintf("%020d", id)
}

// escape keeps principals and other free-form values from introducing
// extra path separators into a key.
func escape(s string) string {
	return url.PathEscape(s)
}

// EventKey is where an event record lives.
func EventKey(id uint64) string { return "event/" + padID(id) }

// ReviewKey is where a review record lives.
func ReviewKey(id uint64) string { return "review/" + padID(id) }

// CommentKey is where a comment record lives.
func CommentKey(id uint64) string { return "comment/" + padID(id) }

// MemberKey is where the membership of user in event lives.
func MemberKey(eventID uint64, user string) string {
	return "member/" + padID(eventID) + "/" + escape(user)
}

// ReviewedKey marks that user has reviewed event; its value is the review ID.
func ReviewedKey(eventID uint64, user string) string {
	return "reviewed/" + padID(eventID) + "/" + escape(user)
}

// VoteKey marks that user cast a vote of the given kind on a review.
func VoteKey(kind string, reviewID uint64, user string) string {
	return "vote/" + kind + "/" + padID(reviewID) + "/" + escape(user)
}

// SeqKey holds the counter for an ID kind.
func SeqKey(kind string) string { return "seq/" + kind }

// IndexKey holds the id list of a secondary index entry.
func IndexKey(name, value string) string {
	return "idx/" + name + "/" + escape(value)
}
