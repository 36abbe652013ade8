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


package ingestion

import "errors"

var (
	// ErrCompleterRequired is returned when no LLM completer is provided.
	ErrCompleterRequired = errors.New("completer is required")

	// ErrStoreRequired is returned when no vector store is provided.
	ErrStoreRequired = errors.New("vector store is required")

	// ErrPipelineRequired is returned when a Dispatcher is created
	// without a compiled pipeline.
	ErrPipelineRequired = errors.New("pipeline is required")

	// ErrDocStoreRequired is returned when a Dispatcher is created
	// without a document registry.
	ErrDocStoreRequired = errors.New("document store is required")

	// ErrFilePathRequired is returned by Run for an input without a file path.
	ErrFilePathRequired = errors.New("file path is required")

	// ErrFileTypeRequired is returned by Run for an input without a file type.
	ErrFileTypeRequired = errors.New("file type is required")

	// ErrOrganizationRequired is returned by Run for an input without an
	// organization id.
	ErrOrganizationRequired = errors.New("organization id is required")

	// ErrDocumentIDRequired is returned by Run for an input without a
	// document id.
	ErrDocumentIDRequired = errors.New("document id is required")
)
