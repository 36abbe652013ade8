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


// Package docstore is the durable registry of ingested documents, backed
// by BadgerDB. It tracks each document's lifecycle status and, once a
// run completes, the extracted structured content and chunk list.
//
// The registry is caller-side persistence: the ingestion pipeline itself
// never touches it. The Dispatcher writes a document as processing before
// a run and as completed or failed after, so reprocessing decisions can
// be made from the registry alone.
package docstore
