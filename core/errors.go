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

import "errors"

// Domain validation errors
var (
	// ErrEmptyContent indicates a content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidTurn indicates a conversation turn failed validation.
	ErrInvalidTurn = errors.New("invalid conversation turn")

	// ErrInvalidChunk indicates a chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrInvalidRelevance indicates a relevance score outside [0,1].
	ErrInvalidRelevance = errors.New("relevance score must be in [0,1]")
)
