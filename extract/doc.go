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


// Package extract turns uploaded files into plain text, keyed by declared
// file type (pdf, docx, txt, csv).
//
// Extractors return the file's text as ordered segments: pages for pdf,
// rows for csv, the whole file for txt and docx. An unknown file type is
// a typed error (ErrUnsupportedType), never a crash; callers record it
// and continue.
package extract
