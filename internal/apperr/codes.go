package apperr

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an error that did not originate in the engine.
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Validation
	CodeTitleEmpty            Code = "EVENT_TITLE_EMPTY"
	CodeTitleTooLong          Code = "EVENT_TITLE_TOO_LONG"
	CodeDescriptionTooLong    Code = "EVENT_DESCRIPTION_TOO_LONG"
	CodePlaceEmpty            Code = "EVENT_PLACE_EMPTY"
	CodePlaceTooLong          Code = "EVENT_PLACE_TOO_LONG"
	CodeCapacityOutOfRange    Code = "EVENT_CAPACITY_OUT_OF_RANGE"
	CodeCapacityBelowCount    Code = "EVENT_CAPACITY_BELOW_PARTICIPANTS"
	CodeCostInvalid           Code = "EVENT_COST_INVALID"
	CodeScheduleInPast        Code = "EVENT_SCHEDULE_IN_PAST"
	CodeSportInvalid          Code = "EVENT_SPORT_INVALID"
	CodeStatusInvalid         Code = "EVENT_STATUS_INVALID"
	CodeImageTooLarge         Code = "EVENT_IMAGE_TOO_LARGE"
	CodeNotesTooLong          Code = "PARTICIPANT_NOTES_TOO_LONG"
	CodeParticipantStatus     Code = "PARTICIPANT_STATUS_INVALID"
	CodeRatingOutOfRange      Code = "REVIEW_RATING_OUT_OF_RANGE"
	CodeReviewCommentTooLong  Code = "REVIEW_COMMENT_TOO_LONG"
	CodeCommentEmpty          Code = "COMMENT_EMPTY"
	CodeCommentTooLong        Code = "COMMENT_TOO_LONG"
	CodeParentCommentMismatch Code = "COMMENT_PARENT_MISMATCH"
	CodeIndexInvalid          Code = "INDEX_INVALID"
	CodeLocationInvalid       Code = "EVENT_LOCATION_INVALID"

	// State
	CodeInvalidTransition  Code = "INVALID_STATUS_TRANSITION"
	CodeEventCompleted     Code = "EVENT_COMPLETED"
	CodeEventClosed        Code = "EVENT_CLOSED"
	CodeEventStarted       Code = "EVENT_ALREADY_STARTED"
	CodeEventFull          Code = "EVENT_FULL"
	CodeEventNotCompleted  Code = "EVENT_NOT_COMPLETED"
	CodeAlreadyParticipant Code = "ALREADY_PARTICIPANT"
	CodeAlreadyReviewed    Code = "ALREADY_REVIEWED"
	CodeAlreadyMarked      Code = "ALREADY_MARKED_HELPFUL"
	CodeAlreadyReported    Code = "ALREADY_REPORTED"

	// Authorization
	CodeNotCreator        Code = "NOT_EVENT_CREATOR"
	CodeCreatorCannotJoin Code = "CREATOR_CANNOT_JOIN"
	CodeNotReviewer       Code = "NOT_REVIEWER"
	CodeNotAuthor         Code = "NOT_COMMENT_AUTHOR"
	CodeNotParticipant    Code = "NOT_PARTICIPANT"
	CodeOwnReview         Code = "OWN_REVIEW"
	CodeUnauthenticated   Code = "UNAUTHENTICATED"

	// Not found
	CodeEventNotFound       Code = "EVENT_NOT_FOUND"
	CodeReviewNotFound      Code = "REVIEW_NOT_FOUND"
	CodeCommentNotFound     Code = "COMMENT_NOT_FOUND"
	CodeParticipantNotFound Code = "PARTICIPANT_NOT_FOUND"
	CodeGroupNotFound       Code = "GROUP_NOT_FOUND"
)

// Kind maps a code to its failure family.
func (c Code) Kind() Kind {
	switch c {
	case CodeTitleEmpty,
		CodeTitleTooLong,
		CodeDescriptionTooLong,
		CodePlaceEmpty,
		CodePlaceTooLong,
		CodeCapacityOutOfRange,
		CodeCapacityBelowCount,
		CodeCostInvalid,
		CodeScheduleInPast,
		CodeSportInvalid,
		CodeStatusInvalid,
		CodeImageTooLarge,
		CodeNotesTooLong,
		CodeParticipantStatus,
		CodeRatingOutOfRange,
		CodeReviewCommentTooLong,
		CodeCommentEmpty,
		CodeCommentTooLong,
		CodeParentCommentMismatch,
		CodeIndexInvalid,
		CodeLocationInvalid:
		return KindValidation

	case CodeInvalidTransition,
		CodeEventCompleted,
		CodeEventClosed,
		CodeEventStarted,
		CodeEventFull,
		CodeEventNotCompleted,
		CodeAlreadyParticipant,
		CodeAlreadyReviewed,
		CodeAlreadyMarked,
		CodeAlreadyReported:
		return KindState

	case CodeNotCreator,
		CodeCreatorCannotJoin,
		CodeNotReviewer,
		CodeNotAuthor,
		CodeNotParticipant,
		CodeOwnReview,
		CodeUnauthenticated:
		return KindAuthorization

	case CodeEventNotFound,
		CodeReviewNotFound,
		CodeCommentNotFound,
		CodeParticipantNotFound,
		CodeGroupNotFound:
		return KindNotFound

	default:
		return KindInternal
	}
}
