// Package export renders password lists for client-side download.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Format selects the export encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

const (
	headerRule      = "========================================"
	filenameLayout  = "20060102_150405"
	timestampLayout = "2006-01-02 15:04:05"
)

var ErrUnsupportedFormat = errors.New("export format must be text or json")

// ParseFormat accepts "text", "txt", "json" (any case) and the empty string,
// which selects text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Document is a rendered export.
type Document struct {
	Content   string
	Filename  string
	MediaType string
}

// Exporter renders exports using the local clock.
type Exporter struct {
	now func() time.Time
}

// New creates an Exporter. A nil clock uses time.Now.
func New(now func() time.Time) *Exporter {
	if now == nil {
		now = time.Now
	}
	return &Exporter{now: now}
}

// Render formats passwords, in order, as a downloadable document.
func (e *Exporter) Render(passwords []string, format Format) (Document, error) {
	now := e.now()
	stamp := now.Format(filenameLayout)

	switch format {
	case FormatJSON:
		content, err := renderJSON(passwords, now)
		if err != nil {
			return Document{}, err
		}
		return Document{
			Content:   content,
			Filename:  fmt.Sprintf("passwords_%s.json", stamp),
			MediaType: "application/json",
		}, nil
	case FormatText:
		return Document{
			Content:   renderText(passwords, now),
			Filename:  fmt.Sprintf("passwords_%s.txt", stamp),
			MediaType: "text/plain",
		}, nil
	default:
		return Document{}, ErrUnsupportedFormat
	}
}

type jsonDocument struct {
	ExportedAt string   `json:"exported_at"`
	Passwords  []string `json:"passwords"`
}

func renderJSON(passwords []string, now time.Time) (string, error) {
	if passwords == nil {
		passwords = []string{}
	}
	b, err := json.MarshalIndent(jsonDocument{
		ExportedAt: now.Format(time.RFC3339),
		Passwords:  passwords,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json export: %w", err)
	}
	return string(b), nil
}

func renderText(passwords []string, now time.Time) string {
	lines := make([]string, 0, len(passwords)+2)
	lines = append(lines, "Password Export - "+now.Format(timestampLayout), headerRule)
	for i, p := range passwords {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, p))
	}
	return strings.Join(lines, "\n")
}
