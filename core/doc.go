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


// Package core defines the domain types shared across the custoPilot
// pipelines: knowledge categories, support intents and departments,
// conversation turns, document sections, chunks, retrieved context and
// the structured content produced by the ingestion workflow.
//
// The types here are deliberately free of behavior beyond parsing and
// validation so that the pipeline packages can depend on them without
// pulling in storage or AI concerns.
package core
