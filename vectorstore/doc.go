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


// Package vectorstore defines the similarity-search service the pipelines
// depend on: add documents, search with an exact-match metadata filter,
// delete by id.
//
// The pipelines treat the index as an opaque, shared, externally-owned
// resource with no transactional guarantees across calls. Two
// implementations exist:
//
//   - vectorstore/memory: embedder + cosine similarity, in-process, used
//     by tests and single-process setups
//   - vectorstore/chroma: a Chroma server via langchaingo
package vectorstore
