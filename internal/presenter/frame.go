package presenter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vk/nutshell/internal/deck"
)

// Event names used on the wire.
const (
	EventStep       = "step"
	EventConnection = "connection"
)

// Frame is the payload of a "step" event.
type Frame struct {
	Index int    `json:"index"`
	Total int    `json:"total"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// NewFrame describes step s at index of total. body is the rendered text of
// the step's example, if any.
func NewFrame(index, total int, s deck.Step, body string) Frame {
	var b strings.Builder
	for _, n := range s.Notes {
		b.WriteString(n)
		b.WriteByte('\n')
	}
	if s.Code != "" {
		b.WriteString(s.Code)
		if !strings.HasSuffix(s.Code, "\n") {
			b.WriteByte('\n')
		}
	}
	if body != "" {
		b.WriteString(body)
	}
	return Frame{Index: index, Total: total, Title: s.Title, Text: strings.TrimRight(b.String(), "\n")}
}

// String renders the frame for a terminal.
func (f Frame) String() string {
	head := fmt.Sprintf("[%d/%d] %s", f.Index+1, f.Total, f.Title)
	if f.Text == "" {
		return head
	}
	return head + "\n\n" + f.Text
}

// decodeFrame converts an event argument, as delivered by the socket.io
// client, into a Frame.
func decodeFrame(v any) (Frame, error) {
	var raw []byte
	switch d := v.(type) {
	case []byte:
		raw = d
	case string:
		raw = []byte(d)
	default:
		var err error
		if raw, err = json.Marshal(d); err != nil {
			return Frame{}, fmt.Errorf("failed to encode step payload: %w", err)
		}
	}
	var f Frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return Frame{}, fmt.Errorf("malformed step payload: %w", err)
	}
	return f, nil
}
