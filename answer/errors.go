package answer

import "errors"

var (
	// ErrRetrieverRequired indicates a nil retriever was provided.
	ErrRetrieverRequired = errors.New("retriever is required")

	// ErrGeneratorRequired indicates a nil generator was provided.
	ErrGeneratorRequired = errors.New("generator is required")

	// ErrEmptyQuery indicates a blank query.
	ErrEmptyQuery = errors.New("query must not be empty")

	// ErrInvalidBudget indicates a non-positive context character budget.
	ErrInvalidBudget = errors.New("context budget must be positive")

	// ErrInvalidTopK indicates a non-positive evidence count.
	ErrInvalidTopK = errors.New("top-k must be positive")

	// ErrGeneration indicates the language model failed to produce an answer.
	ErrGeneration = errors.New("answer generation failed")
)
