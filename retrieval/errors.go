package retrieval

import "errors"

var (
	// ErrSourceRequired indicates a nil index source was provided.
	ErrSourceRequired = errors.New("index source is required")

	// ErrEmbedderRequired indicates a nil embedder was provided.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrIndexNotReady indicates no index snapshot has been built yet.
	ErrIndexNotReady = errors.New("index not ready")

	// ErrEmptyQuery indicates a blank retrieval query.
	ErrEmptyQuery = errors.New("query must not be empty")

	// ErrInvalidLimit indicates a non-positive result limit.
	ErrInvalidLimit = errors.New("result limit must be positive")

	// ErrInvalidScoreFloor indicates a score floor outside [0, 1].
	ErrInvalidScoreFloor = errors.New("score floor must be between 0 and 1")
)
