package llmjson

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON indicates no decodable JSON payload was found in the response.
var ErrNoJSON = errors.New("no decodable JSON in response")

// Unmarshal decodes a language-model response into v.
//
// It tries, in order: the raw response, the contents of a ```json or ```
// fenced block, and a repaired form of both. The first variant that
// unmarshals wins. Returns ErrNoJSON (wrapping the last decode error)
// when every attempt fails; the caller supplies its own default value.
func Unmarshal(response string, v any) error {
	response = strings.TrimSpace(response)
	if response == "" {
		return ErrNoJSON
	}

	candidates := []string{response}
	if fenced := ExtractFenced(response); fenced != "" && fenced != response {
		candidates = append(candidates, fenced)
	}
	n := len(candidates)
	for i := 0; i < n; i++ {
		candidates = append(candidates, repairJSON(candidates[i]))
	}

	var lastErr error
	for _, candidate := range candidates {
		if err := json.Unmarshal([]byte(candidate), v); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return errors.Join(ErrNoJSON, lastErr)
}

// ExtractFenced returns the contents of the first markdown code fence in
// the response, preferring ```json fences over anonymous ones. Returns ""
// when no fence is present.
func ExtractFenced(response string) string {
	if body, ok := between(response, "```json"); ok {
		return body
	}
	if body, ok := between(response, "```"); ok {
		return body
	}
	return ""
}

// between extracts the text between an opening marker and the next ```.
func between(s, open string) (string, bool) {
	start := strings.Index(s, open)
	if start < 0 {
		return "", false
	}
	rest := s[start+len(open):]
	end := strings.Index(rest, "```")
	if end < 0 {
		// Unterminated fence, take everything after the marker.
		return strings.TrimSpace(rest), strings.TrimSpace(rest) != ""
	}
	body := strings.TrimSpace(rest[:end])
	return body, body != ""
}
