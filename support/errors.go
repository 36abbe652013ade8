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


package support

import "errors"

var (
	// ErrCompleterRequired is returned when no LLM completer is provided.
	ErrCompleterRequired = errors.New("completer is required")

	// ErrStoreRequired is returned when no vector store is provided.
	ErrStoreRequired = errors.New("vector store is required")

	// ErrMessageRequired is returned by Run for an input without a user
	// message.
	ErrMessageRequired = errors.New("user message is required")

	// ErrOrganizationRequired is returned by Run for an input without an
	// organization id.
	ErrOrganizationRequired = errors.New("organization id is required")
)
