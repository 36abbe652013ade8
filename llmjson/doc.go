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


// Package llmjson decodes JSON embedded in language-model responses.
//
// Models asked for structured output routinely wrap the payload in
// markdown code fences, prepend prose, or emit slightly malformed JSON.
// Unmarshal applies a best-effort ladder: strict decode, then fenced-block
// extraction, then a key-quote repair pass. Callers must treat a returned
// error as recoverable and fall back to their own default value; nothing
// in this package panics or retries.
package llmjson
