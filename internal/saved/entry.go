package saved

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const permalinkBaseURL = "https://www.reddit.com"

// Kind classifies an entry by the text it carries.
type Kind int

const (
	KindLink Kind = iota
	KindComment
	KindSelfPost
)

func (k Kind) String() string {
	switch k {
	case KindComment:
		return "Comment"
	case KindSelfPost:
		return "Self-post"
	default:
		return "Link"
	}
}

// Entry is one saved record. The named fields cover what the browser
// renders; Fields keeps every raw key for filtering and action lookups.
type Entry struct {
	ID         string
	Title      string
	LinkTitle  string
	Subreddit  string
	Author     string
	CreatedUTC float64
	Body       *string
	Selftext   *string
	URL        string
	Permalink  string

	Fields map[string]any
}

var errNotObject = errors.New("record is not a JSON object")

// NewEntry builds an Entry from a decoded record. The map is kept as is and
// must not be modified afterwards.
func NewEntry(fields map[string]any) Entry {
	e := Entry{Fields: fields}
	e.ID = stringify(fields["id"])
	e.Title = stringValue(fields, "title")
	e.LinkTitle = stringValue(fields, "link_title")
	e.Subreddit = stringValue(fields, "subreddit")
	e.Author = stringValue(fields, "author")
	e.URL = stringValue(fields, "url")
	e.Permalink = stringValue(fields, "permalink")
	if v, ok := fields["created_utc"].(float64); ok {
		e.CreatedUTC = v
	}
	if v, ok := fields["body"]; ok {
		body := stringify(v)
		e.Body = &body
	}
	if v, ok := fields["selftext"]; ok {
		selftext := stringify(v)
		e.Selftext = &selftext
	}
	return e
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %v", errNotObject, err)
	}
	if fields == nil {
		return errNotObject
	}
	*e = NewEntry(fields)
	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(e.Fields)
}

func (e Entry) Kind() Kind {
	if e.Body != nil {
		return KindComment
	}
	if e.Selftext != nil && *e.Selftext != "" {
		return KindSelfPost
	}
	return KindLink
}

// DisplayTitle falls back from title to link_title; comments only carry the
// latter.
func (e Entry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.LinkTitle
}

// Text is the markup the detail view reflows. Links have none.
func (e Entry) Text() string {
	switch e.Kind() {
	case KindComment:
		return *e.Body
	case KindSelfPost:
		return *e.Selftext
	}
	return ""
}

func (e Entry) PermalinkURL() string {
	p := strings.TrimSpace(e.Permalink)
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return permalinkBaseURL + p
}

// ResolvedURL is the entry's own url, or its permalink when it has none.
func (e Entry) ResolvedURL() string {
	if e.URL != "" {
		return e.URL
	}
	return e.PermalinkURL()
}

func (e Entry) CreatedAt() time.Time {
	if e.CreatedUTC <= 0 {
		return time.Time{}
	}
	sec := int64(e.CreatedUTC)
	nsec := int64((e.CreatedUTC - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC()
}

// Field looks a raw key up and renders it as text.
func (e Entry) Field(name string) (string, bool) {
	v, ok := e.Fields[name]
	if !ok {
		return "", false
	}
	return stringify(v), true
}

// ContainsString reports whether any string-typed raw value contains sub.
func (e Entry) ContainsString(sub string) bool {
	for _, v := range e.Fields {
		if s, ok := v.(string); ok && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func stringValue(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
