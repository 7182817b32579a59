package models

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/mroshb/notefmt/pkg/errors"
	"github.com/mroshb/notefmt/pkg/utils"
)

// Note mirrors the note payload returned by the notes API.
type Note struct {
	ID         uint   `json:"id"`
	Text       string `json:"text"`
	Importance int    `json:"importance"`
	Archived   bool   `json:"archived"`
	ListID     uint   `json:"list,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// Direction is the dir attribute the note body should be rendered with.
func (n *Note) Direction() string {
	return utils.Direction(n.Text)
}

func (n *Note) IsRTL() bool {
	return utils.IsRTL(n.Text)
}

func (n *Note) Validate() error {
	if strings.TrimSpace(n.Text) == "" {
		return errors.New(errors.ErrCodeValidationFailed, "note text is empty")
	}
	if n.Importance < 0 {
		return errors.New(errors.ErrCodeValidationFailed, "note importance must not be negative")
	}
	return nil
}

// DecodeNotes reads a JSON array of notes.
func DecodeNotes(r io.Reader) ([]Note, error) {
	var notes []Note
	if err := json.NewDecoder(r).Decode(&notes); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "decode notes")
	}
	return notes, nil
}
