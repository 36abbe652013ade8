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


package docstore

import "errors"

var (
	// ErrNotFound is returned when a document id is not in the registry.
	ErrNotFound = errors.New("document not found")

	// ErrIDRequired is returned when a document without an id is stored.
	ErrIDRequired = errors.New("document id is required")

	// ErrOrganizationRequired is returned when a document without an
	// organization id is stored.
	ErrOrganizationRequired = errors.New("organization id is required")
)
