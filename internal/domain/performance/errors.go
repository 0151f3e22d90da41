package performance

import "errors"

var (
	ErrReviewNotFound  = errors.New("performance review not found")
	ErrDuplicateReview = errors.New("employee already has a review for this date")
)
