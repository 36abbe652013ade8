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


// Package pipeline provides a generic directed-graph executor for
// multi-stage agent workflows.
//
// A Graph is built from named stages connected by unconditional edges
// plus at most one conditional fork, then compiled into a Runner that
// walks the graph sequentially over a caller-supplied state value.
//
// # Stage contract
//
// A stage receives the state, mutates or replaces it, and returns it.
// Stages never report errors to the engine: recoverable failures (LLM
// calls, retrieval, parsing) are caught inside the stage and recorded in
// the state's own control fields. A stage that panics is a programmer
// error; the panic propagates and fails the whole invocation loudly.
//
// The engine performs no retries and no parallel fan-out. Each stage runs
// exactly once per invocation; Run returns an error only for graph-level
// defects (an unmapped branch label, a revisited node).
//
// Concurrency exists only across runs: a Runner is immutable after
// Compile and safe for concurrent Run calls, each over its own state.
package pipeline
