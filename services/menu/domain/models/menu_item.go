package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// DefaultCategory is assigned when an item is created without a truthy category.
const DefaultCategory = "other"

// TimeLayout is the stored form of createdAt/updatedAt: UTC with exactly
// three fractional digits.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// MenuItem is one entry of the menu. Client-supplied fields hold raw JSON
// exactly as sent, so a price of "99" stays a string. A nil field is absent
// from the stored object; the literal null is kept as null. Keys the service
// does not know about are carried in Extra and written back untouched.
type MenuItem struct {
	ID        int64
	Name      json.RawMessage
	Price     json.RawMessage
	Category  json.RawMessage
	Available json.RawMessage
	CreatedAt *time.Time
	UpdatedAt *time.Time
	Extra     map[string]json.RawMessage
}

// Draft holds the client-supplied fields of a new item. nil means the key was
// not sent.
type Draft struct {
	Name     json.RawMessage
	Price    json.RawMessage
	Category json.RawMessage
}

// Patch holds the fields an update may overwrite. A nil field is left
// untouched; any other value, null included, replaces the stored one.
type Patch struct {
	Name      json.RawMessage
	Price     json.RawMessage
	Available json.RawMessage
}

// NewMenuItem builds an available item from d, defaulting a falsy category and
// stamping CreatedAt with now.
func NewMenuItem(id int64, d Draft, now time.Time) MenuItem {
	category := clone(d.Category)
	if !Truthy(category) {
		category = String(DefaultCategory)
	}
	created := Timestamp(now)
	return MenuItem{
		ID:        id,
		Name:      clone(d.Name),
		Price:     clone(d.Price),
		Category:  category,
		Available: Bool(true),
		CreatedAt: &created,
	}
}

// Apply overwrites the fields present in p and stamps UpdatedAt with now.
func (m *MenuItem) Apply(p Patch, now time.Time) {
	if p.Price != nil {
		m.Price = clone(p.Price)
	}
	if p.Name != nil {
		m.Name = clone(p.Name)
	}
	if p.Available != nil {
		m.Available = clone(p.Available)
	}
	updated := Timestamp(now)
	m.UpdatedAt = &updated
	delete(m.Extra, keyUpdatedAt)
}

const (
	keyID        = "id"
	keyName      = "name"
	keyPrice     = "price"
	keyCategory  = "category"
	keyAvailable = "available"
	keyCreatedAt = "createdAt"
	keyUpdatedAt = "updatedAt"
)

// MarshalJSON writes the known keys first, in creation order, followed by
// Extra sorted by key.
func (m MenuItem) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.WriteString(`"id":`)
	buf.WriteString(strconv.FormatInt(m.ID, 10))

	write := func(key string, raw json.RawMessage) error {
		if raw == nil {
			return nil
		}
		if !json.Valid(raw) {
			return fmt.Errorf("menu item %d: invalid JSON in %q", m.ID, key)
		}
		buf.WriteString(`,"` + key + `":`)
		buf.Write(raw)
		return nil
	}
	for _, f := range []struct {
		key string
		raw json.RawMessage
	}{
		{keyName, m.Name},
		{keyPrice, m.Price},
		{keyCategory, m.Category},
		{keyAvailable, m.Available},
		{keyCreatedAt, timeValue(m.CreatedAt)},
		{keyUpdatedAt, timeValue(m.UpdatedAt)},
	} {
		if err := write(f.key, f.raw); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(m.Extra))
	for k := range m.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		if !json.Valid(m.Extra[k]) {
			return nil, fmt.Errorf("menu item %d: invalid JSON in %q", m.ID, k)
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(m.Extra[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a stored item. The id must be an integral number;
// timestamps that do not parse are kept verbatim in Extra.
func (m *MenuItem) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("menu item must be an object")
	}

	rawID, ok := fields[keyID]
	if !ok {
		return fmt.Errorf("menu item has no id")
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	*m = MenuItem{
		ID:        id,
		Name:      fields[keyName],
		Price:     fields[keyPrice],
		Category:  fields[keyCategory],
		Available: fields[keyAvailable],
	}
	for _, k := range []string{keyID, keyName, keyPrice, keyCategory, keyAvailable} {
		delete(fields, k)
	}
	if raw, ok := fields[keyCreatedAt]; ok {
		if t, ok := parseTime(raw); ok {
			m.CreatedAt = &t
			delete(fields, keyCreatedAt)
		}
	}
	if raw, ok := fields[keyUpdatedAt]; ok {
		if t, ok := parseTime(raw); ok {
			m.UpdatedAt = &t
			delete(fields, keyUpdatedAt)
		}
	}
	if len(fields) > 0 {
		m.Extra = fields
	}
	return nil
}

func parseID(raw json.RawMessage) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("menu item id %s is not a number", raw)
	}
	if id, err := n.Int64(); err == nil {
		return id, nil
	}
	f, err := n.Float64()
	if err != nil || f != float64(int64(f)) {
		return 0, fmt.Errorf("menu item id %s is not an integer", raw)
	}
	return int64(f), nil
}

func parseTime(raw json.RawMessage) (time.Time, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return Timestamp(t), true
}

func timeValue(t *time.Time) json.RawMessage {
	if t == nil {
		return nil
	}
	return String(t.UTC().Format(TimeLayout))
}

// Timestamp normalizes t to the millisecond-precision UTC form stored in the menu.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// Truthy reports whether v counts as set for defaulting purposes. Absent,
// null, false, 0 and "" are falsy; everything else is truthy.
func Truthy(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return false
	}
	switch v[0] {
	case 'n', 'f':
		return false
	case 't', '{', '[':
		return true
	case '"':
		var s string
		return json.Unmarshal(v, &s) == nil && s != ""
	default:
		f, err := strconv.ParseFloat(string(v), 64)
		return err != nil || f != 0
	}
}

// String returns s as a JSON string value.
func String(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}

// Number returns f as a JSON number value.
func Number(f float64) json.RawMessage {
	return json.RawMessage(strconv.FormatFloat(f, 'f', -1, 64))
}

// Bool returns b as a JSON boolean value.
func Bool(b bool) json.RawMessage {
	return json.RawMessage(strconv.FormatBool(b))
}

// Null is the JSON null literal.
func Null() json.RawMessage {
	return json.RawMessage("null")
}

func clone(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	return append(json.RawMessage(nil), v...)
}
