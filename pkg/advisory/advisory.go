package advisory

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

var ErrInvalidFeed = errors.New("invalid advisory feed")

// Advisory is a single record read from the advisory feed.
type Advisory struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Severity    string      `json:"severity"`
	Description string      `json:"description"`
	Published   string      `json:"published"`
	Affected    []string    `json:"affected"`
	Application Application `json:"-"`
}

// Specifiers parses every affected descriptor of the advisory.
func (a Advisory) Specifiers() []Specifier {
	specs := make([]Specifier, 0, len(a.Affected))
	for _, raw := range a.Affected {
		specs = append(specs, ParseSpecifier(raw))
	}
	return specs
}

// LoadFeed reads a feed file from disk.
func LoadFeed(path string) ([]Advisory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read advisory feed: %w", err)
	}

	return ParseFeed(data)
}

// ParseFeed decodes a feed document. The document is either an array of
// advisories or an object holding them under "advisories". Records without an
// id are skipped.
func ParseFeed(data []byte) ([]Advisory, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidFeed)
	}

	doc := gjson.ParseBytes(data)
	records := doc
	if doc.IsObject() {
		records = doc.Get("advisories")
	}

	if !records.IsArray() {
		return nil, fmt.Errorf("%w: no advisories array", ErrInvalidFeed)
	}

	advisories := []Advisory{}
	for _, record := range records.Array() {
		if !record.IsObject() {
			continue
		}

		adv := parseRecord(record)
		if adv.ID == "" {
			continue
		}
		advisories = append(advisories, adv)
	}

	return advisories, nil
}

func parseRecord(record gjson.Result) Advisory {
	adv := Advisory{
		ID:          strings.TrimSpace(record.Get("id").String()),
		Title:       record.Get("title").String(),
		Severity:    strings.ToLower(record.Get("severity").String()),
		Description: record.Get("description").String(),
		Published:   record.Get("published").String(),
		Application: ApplicationFromJSON(record.Get("application")),
	}

	for _, raw := range record.Get("affected").Array() {
		if raw.Type != gjson.String || strings.TrimSpace(raw.Str) == "" {
			continue
		}
		adv.Affected = append(adv.Affected, raw.Str)
	}

	return adv
}
