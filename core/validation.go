// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateTurn validates a conversation turn according to domain rules.
//
// Validation rules:
//   - Role must not be empty
//   - Content must not be empty
func ValidateTurn(turn Turn) error {
	if turn.Role == "" {
		return fmt.Errorf("%w: role is empty", ErrInvalidTurn)
	}
	if turn.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTurn, ErrEmptyContent)
	}
	return nil
}

// ValidateChunk validates a chunk according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - Index must be non-negative and below TotalChunks
//   - DocumentID must not be empty
//
// NOT validated (populated by the vector index):
//   - VectorID (empty until the chunk is stored)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}
	if chunk.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyContent)
	}
	if chunk.Index < 0 || (chunk.TotalChunks > 0 && chunk.Index >= chunk.TotalChunks) {
		return fmt.Errorf("%w: index %d out of range", ErrInvalidChunk, chunk.Index)
	}
	if chunk.DocumentID == "" {
		return fmt.Errorf("%w: document id is empty", ErrInvalidChunk)
	}
	return nil
}

// ValidateRelevance checks that a relevance score is within [0,1].
func ValidateRelevance(score float64) error {
	if score < 0 || score > 1 {
		return fmt.Errorf("%w: got %f", ErrInvalidRelevance, score)
	}
	return nil
}
