// internal/llm/extract.go
package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

var errNoJSONObject = errors.New("no JSON object in model output")

// ExtractJSONObject pulls a JSON object out of a raw model reply.
// Models often wrap the payload in markdown fences or surround it with
// prose, so after stripping fences we fall back to the substring between
// the first '{' and the last '}'.
func ExtractJSONObject(raw string, v interface{}) error {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	if json.Unmarshal([]byte(s), v) == nil {
		return nil
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return errNoJSONObject
	}
	return json.Unmarshal([]byte(s[start:end+1]), v)
}
