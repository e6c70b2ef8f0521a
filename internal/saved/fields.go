package saved

// Logical field names understood by ResolveField on top of raw keys.
const (
	FieldText    = "text"
	FieldBody    = "body"
	FieldURL     = "url"
	FieldAddress = "address"
	FieldTitle   = "title"
)

// ResolveField maps a logical field name to a value of the entry. Unknown
// names are looked up directly on the raw record; missing ones resolve to
// the empty string.
func ResolveField(e Entry, name string) string {
	switch name {
	case FieldText, FieldBody:
		if e.Selftext != nil && *e.Selftext != "" {
			return *e.Selftext
		}
		if e.Body != nil {
			return *e.Body
		}
		return ""
	case FieldURL, FieldAddress:
		return e.ResolvedURL()
	case FieldTitle:
		return e.DisplayTitle()
	}
	v, _ := e.Field(name)
	return v
}
