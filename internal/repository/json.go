package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// stringList decodes either a single JSON string or a list of strings.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = stringList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("expected a string or a list of strings: %w", err)
	}
	*l = list
	return nil
}

// cardDocument is one entry of the "questions" list.
// qst, answer and tips are accepted as aliases of recto, verso and tip.
type cardDocument struct {
	Recto  stringList `json:"recto"`
	Qst    stringList `json:"qst"`
	Verso  stringList `json:"verso"`
	Answer stringList `json:"answer"`
	Tip    stringList `json:"tip"`
	Tips   stringList `json:"tips"`
	Tags   []string   `json:"tags"`
}

func firstNonEmpty(lists ...stringList) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}

func loadJSON(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Questions []cardDocument `json:"questions"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cards JSON %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(wrapper.Questions))
	for i, doc := range wrapper.Questions {
		entry, err := newEntry(
			path,
			i+1,
			firstNonEmpty(doc.Recto, doc.Qst),
			firstNonEmpty(doc.Verso, doc.Answer),
			firstNonEmpty(doc.Tip, doc.Tips),
			doc.Tags,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
