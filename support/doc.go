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


// Package support turns a customer message plus conversation history
// into a response, a confidence score and an escalation decision.
//
// A run walks six stages on a strictly linear graph:
//
//	intent -> router -> retriever -> reasoner -> responder -> scorer
//
// Every LLM-backed stage absorbs its own failures with a fixed fallback,
// so the user always gets a response, degraded at worst. The scorer's
// confidence feeds the escalation policy: below the configured threshold
// the conversation escalates regardless of the model's own suggestion.
package support
