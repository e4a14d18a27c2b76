package models

import "errors"

var (
	// ErrFeedUnavailable covers transport failures and feed responses
	// that cannot be decoded at all. The refresh cycle produces nothing.
	ErrFeedUnavailable = errors.New("live scores feed unavailable")

	// ErrNoResolvableScores means the feed parsed but contained no entry
	// with a normalizable to-par value, so the penalty score cannot be
	// computed. Fatal for the cycle, same handling as ErrFeedUnavailable.
	ErrNoResolvableScores = errors.New("feed contains no resolvable scores")
)
