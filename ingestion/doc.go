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


// Package ingestion turns an uploaded document into classified,
// structured, chunked and embedded knowledge.
//
// A run walks a six-stage graph:
//
//	loader -> parser -> classifier -> structurer -> validator -> (storage | end)
//
// All transitions are unconditional except the validator's, which
// branches on whether validation passed. A rejected document ends the
// run with no chunks persisted; its error list explains why.
//
// Stages never return errors. Recoverable failures (unsupported file
// type, LLM call failures, malformed model output) are either recorded
// in the state's error list or absorbed by a stage-local fallback, so a
// run always terminates with a complete Result. The Dispatcher adds
// across-run concurrency and durable status tracking on top of the
// pipeline; the pipeline itself is strictly sequential per run.
package ingestion
