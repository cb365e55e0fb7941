package models

import (
	"encoding/json"
	"time"
)

const ContentSet = "content"

// ContentItem holds one piece of editable site copy keyed by name. Value is
// kept as raw JSON so editors can store strings, lists, or objects.
type ContentItem struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
