package ingestion

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/abhikarki/custoPilot/core"
	"github.com/abhikarki/custoPilot/extract"
	"github.com/abhikarki/custoPilot/llmjson"
	"github.com/abhikarki/custoPilot/vectorstore"
)

// Input caps, in characters, for the text handed to each LLM stage.
const (
	parserInputCap     = 15000
	classifierInputCap = 3000
	structurerInputCap = 10000
)

// minDocumentLength is the shortest raw text the validator accepts.
const minDocumentLength = 50

const extractionTemperature = 0.1

// loader extracts plain text from the input file. An unsupported type or
// read failure is recorded, not fatal: downstream stages run against
// empty text and the validator rejects the document.
func (p *Pipeline) loader(ctx context.Context, state State) State {
	extractor, err := extract.For(state.FileType)
	if err != nil {
		state.Errors = append(state.Errors, fmt.Sprintf("unsupported file type: %s", state.FileType))
		return state
	}

	pages, err := extractor.Extract(ctx, state.FilePath)
	if err != nil {
		state.Errors = append(state.Errors, fmt.Sprintf("failed to load document: %v", err))
		return state
	}

	state.RawText = strings.Join(pages, "\n\n")
	state.Metadata["page_count"] = strconv.Itoa(len(pages))
	state.Metadata["total_chars"] = strconv.Itoa(len(state.RawText))

	p.logger.Debug("document loaded",
		"document_id", state.DocumentID, "pages", len(pages), "chars", len(state.RawText))
	return state
}

// parser asks the LLM to segment the text into titled sections. Any
// failure falls back to a single catch-all section holding the raw text.
// Empty text records an error and never reaches the model.
func (p *Pipeline) parser(ctx context.Context, state State) State {
	if strings.TrimSpace(state.RawText) == "" {
		state.Errors = append(state.Errors, "no raw text to parse")
		state.Sections = rawTextSections(state.RawText)
		return state
	}

	var sections []core.Section
	response, err := p.completer.Complete(ctx, parserSystem, parserPrompt(head(state.RawText, parserInputCap)), extractionTemperature)
	if err == nil {
		err = llmjson.Unmarshal(response, &sections)
	}
	if err != nil || len(sections) == 0 {
		p.logger.Warn("section parsing fell back to raw text", "document_id", state.DocumentID, "err", err)
		sections = rawTextSections(state.RawText)
	}

	state.Sections = sections
	return state
}

// rawTextSections is the parser fallback: one catch-all section.
func rawTextSections(raw string) []core.Section {
	return []core.Section{{
		Title:   "Document Content",
		Content: raw,
		Type:    "paragraph",
	}}
}

// classifier picks the knowledge type from a short sample. Labels
// outside the closed set, and any failure, normalize to general.
func (p *Pipeline) classifier(ctx context.Context, state State) State {
	label := ""
	response, err := p.completer.Complete(ctx, classifierSystem, classifierPrompt(head(state.RawText, classifierInputCap)), 0)
	if err == nil {
		var out struct {
			Type string `json:"type"`
		}
		if llmjson.Unmarshal(response, &out) == nil {
			label = out.Type
		} else {
			// Some models answer with the bare label instead of JSON.
			label = response
		}
	}

	state.KnowledgeType = core.ParseKnowledgeType(label)
	p.logger.Debug("document classified", "document_id", state.DocumentID, "type", state.KnowledgeType)
	return state
}

// validator is the deterministic gate before storage. It appends its own
// findings to the error list and passes only a run with no errors at all.
func (p *Pipeline) validator(ctx context.Context, state State) State {
	if strings.TrimSpace(state.RawText) == "" {
		state.Errors = append(state.Errors, "document contains no text")
	} else if len(state.RawText) < minDocumentLength {
		state.Errors = append(state.Errors,
			fmt.Sprintf("document too short: %d characters, need at least %d", len(state.RawText), minDocumentLength))
	}
	if state.Structured == nil {
		state.Errors = append(state.Errors, "no structured content extracted")
	}

	state.ValidationPassed = len(state.Errors) == 0
	if !state.ValidationPassed {
		p.logger.Info("document rejected", "document_id", state.DocumentID, "errors", state.Errors)
	}
	return state
}

// storage chunks the raw text and indexes every chunk in the vector
// store, tagged for retrieval filtering. A store failure is recorded and
// the run still terminates.
func (p *Pipeline) storage(ctx context.Context, state State) State {
	pieces, err := p.chunker.Split(state.RawText)
	if err != nil {
		state.Errors = append(state.Errors, fmt.Sprintf("failed to chunk document: %v", err))
		return state
	}

	chunks := make([]core.Chunk, len(pieces))
	docs := make([]vectorstore.Document, len(pieces))
	for i, piece := range pieces {
		chunks[i] = core.Chunk{
			Content:       piece,
			Index:         i,
			TotalChunks:   len(pieces),
			DocumentID:    state.DocumentID,
			KnowledgeType: state.KnowledgeType,
		}
		docs[i] = vectorstore.Document{
			Content: piece,
			Metadata: map[string]string{
				"document_id":     state.DocumentID,
				"organization_id": state.OrganizationID,
				"department_id":   state.DepartmentID,
				"knowledge_type":  string(state.KnowledgeType),
				"chunk_index":     strconv.Itoa(i),
			},
		}
	}

	ids, err := p.store.Add(ctx, docs)
	if err != nil {
		state.Errors = append(state.Errors, fmt.Sprintf("failed to store chunks: %v", err))
		state.Chunks = chunks
		return state
	}
	for i := range chunks {
		if i < len(ids) {
			chunks[i].VectorID = ids[i]
		}
	}

	state.Chunks = chunks
	p.logger.Info("document stored", "document_id", state.DocumentID, "chunks", len(chunks))
	return state
}

// head returns at most n bytes of s, backing up so a multibyte rune is
// never split.
func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
