/*
 * Copyright 2025 Poiesic, Incorporated

 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at

 *     http://www.apache.org/licenses/LICENSE-2.0

 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package index

import "errors"

var (
	// ErrEmbedderRequired indicates a nil embedder was provided.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrModelRequired indicates an empty embedding model name.
	ErrModelRequired = errors.New("embedding model name is required")

	// ErrEmbedding indicates embedding generation failed for one or more units.
	ErrEmbedding = errors.New("embedding generation failed")

	// ErrEmptyUnitText indicates a unit with no text reached the embedder.
	ErrEmptyUnitText = errors.New("unit has empty text")

	// ErrDimensionMismatch indicates vectors of differing dimensions.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrVectorCount indicates the vector count does not match the unit count.
	ErrVectorCount = errors.New("vector count does not match unit count")

	// ErrEmptyQuery indicates a blank search query.
	ErrEmptyQuery = errors.New("query must not be empty")
)
