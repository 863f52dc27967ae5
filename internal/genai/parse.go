package genai

import (
	"encoding/json"
	"fmt"
	"regexp"
)

var fencedJSON = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n\\s*```")

// decodeJSON decodes a model answer into v. A ```json fenced block is
// preferred when present, otherwise the whole text is decoded.
func decodeJSON(text string, v any) error {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		if err := json.Unmarshal([]byte(m[1]), v); err == nil {
			return nil
		}
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
