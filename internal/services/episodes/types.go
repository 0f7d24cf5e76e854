package episodes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// APIEpisode is an episode record exactly as the upstream API returns it
type APIEpisode struct {
	ID          FlexString `json:"id"`
	Title       string     `json:"title"`
	Members     string     `json:"members"`
	PublishedAt string     `json:"published_at"`
	Thumbnail   string     `json:"thumbnail"`
	Description string     `json:"description"`
	File        APIFile    `json:"file"`
}

// APIFile is the nested media file of an APIEpisode
type APIFile struct {
	URL      string  `json:"url"`
	Type     string  `json:"type"`
	Duration FlexInt `json:"duration"`
}

// ListParams are the query parameters of the episode list endpoint
type ListParams struct {
	Limit int
	Sort  string
	Order string
}

// DefaultListParams returns the newest-first listing used for pre-rendering
func DefaultListParams(limit int) ListParams {
	return ListParams{
		Limit: limit,
		Sort:  "published_at",
		Order: "desc",
	}
}

// FlexString decodes a JSON string or number into a string
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*s = FlexString(n.String())
	return nil
}

// FlexInt decodes a JSON number or numeric string into whole seconds
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	if raw == "" {
		*i = 0
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("duration %q is not numeric: %w", raw, err)
	}
	*i = FlexInt(int(f))
	return nil
}
