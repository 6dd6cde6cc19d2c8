package utils

import (
	"encoding/json"
	"strings"
)

// PhotosToString converts photo references to a JSON array for a text column.
func PhotosToString(photos []string) string {
	if len(photos) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(photos)
	return string(data)
}

// StringToPhotos converts the stored column back to references, keeping order.
func StringToPhotos(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" {
		return []string{}
	}
	var photos []string
	if err := json.Unmarshal([]byte(s), &photos); err != nil {
		// legacy rows: comma separated
		photos = strings.Split(s, ",")
	}
	out := make([]string, 0, len(photos))
	for _, p := range photos {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StringPtr returns nil for blank strings so optional columns store NULL.
func StringPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
