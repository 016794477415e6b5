package catalog

// MaxAttributeValue is the upper bound of an attribute (base stat) value.
const MaxAttributeValue = 255

// PageResponse is the wire shape of a paginated catalog page.
type PageResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []SummaryRecord `json:"results"`
}

// SummaryRecord is one entry of PageResponse.Results.
type SummaryRecord struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DetailResponse is the wire shape of a detail record. Only the fields the
// views consume are decoded.
type DetailResponse struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Height  int          `json:"height"`
	Weight  int          `json:"weight"`
	Sprites SpriteSet    `json:"sprites"`
	Types   []TypeSlot   `json:"types"`
	Stats   []StatRecord `json:"stats"`
}

// SpriteSet holds the default sprite URLs; either may be null.
type SpriteSet struct {
	FrontDefault *string `json:"front_default"`
	BackDefault  *string `json:"back_default"`
}

// TypeSlot is one classification of a detail record.
type TypeSlot struct {
	Slot int         `json:"slot"`
	Type NamedRecord `json:"type"`
}

// StatRecord is one base stat of a detail record.
type StatRecord struct {
	BaseStat int         `json:"base_stat"`
	Stat     NamedRecord `json:"stat"`
}

// NamedRecord is the catalog's {name, url} reference shape.
type NamedRecord struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Summary identifies a catalog entry and where its detail record lives.
type Summary struct {
	Name      string `json:"name"`
	DetailURL string `json:"detail_url"`
}

// Cursor is the paging state of a loaded page. Next and Previous are empty
// when no page exists in that direction.
type Cursor struct {
	Current  string `json:"current"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// HasNext reports whether a following page exists.
func (c Cursor) HasNext() bool { return c.Next != "" }

// HasPrevious reports whether a preceding page exists.
func (c Cursor) HasPrevious() bool { return c.Previous != "" }

// Entry is a list row: a summary enriched with sprite URLs and classifications.
type Entry struct {
	Name            string   `json:"name"`
	FrontImageURL   string   `json:"front_image_url"`
	BackImageURL    string   `json:"back_image_url"`
	Classifications []string `json:"classifications"`
}

// PrimaryClassification returns the first classification, or "".
func (e Entry) PrimaryClassification() string {
	if len(e.Classifications) == 0 {
		return ""
	}
	return e.Classifications[0]
}

// Attribute is a labelled base stat.
type Attribute struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Detail is the full display record for one item. Height and weight keep the
// catalog's native units (decimeters, decagrams).
type Detail struct {
	ID               int         `json:"id"`
	Name             string      `json:"name"`
	FrontImageURL    string      `json:"front_image_url"`
	BackImageURL     string      `json:"back_image_url"`
	Classifications  []string    `json:"classifications"`
	Attributes       []Attribute `json:"attributes"`
	HeightDecimeters int         `json:"height_decimeters"`
	WeightDecagrams  int         `json:"weight_decagrams"`
}

// PrimaryClassification returns the first classification, or "".
func (d Detail) PrimaryClassification() string {
	if len(d.Classifications) == 0 {
		return ""
	}
	return d.Classifications[0]
}

// Entry projects the detail into a list row.
func (d Detail) Entry() Entry {
	return Entry{
		Name:            d.Name,
		FrontImageURL:   d.FrontImageURL,
		BackImageURL:    d.BackImageURL,
		Classifications: d.Classifications,
	}
}

// Summaries converts the page results.
func (p PageResponse) Summaries() []Summary {
	out := make([]Summary, len(p.Results))
	for i, r := range p.Results {
		out[i] = Summary{Name: r.Name, DetailURL: r.URL}
	}
	return out
}

// Cursor builds the cursor for the page fetched from current.
func (p PageResponse) Cursor(current string) Cursor {
	return Cursor{
		Current:  current,
		Next:     deref(p.Next),
		Previous: deref(p.Previous),
	}
}

// Detail projects the wire record into display fields.
func (r DetailResponse) Detail() Detail {
	d := Detail{
		ID:               r.ID,
		Name:             r.Name,
		FrontImageURL:    deref(r.Sprites.FrontDefault),
		BackImageURL:     deref(r.Sprites.BackDefault),
		Classifications:  make([]string, 0, len(r.Types)),
		Attributes:       make([]Attribute, 0, len(r.Stats)),
		HeightDecimeters: r.Height,
		WeightDecagrams:  r.Weight,
	}
	for _, t := range r.Types {
		d.Classifications = append(d.Classifications, t.Type.Name)
	}
	for _, s := range r.Stats {
		d.Attributes = append(d.Attributes, Attribute{Label: s.Stat.Name, Value: s.BaseStat})
	}
	return d
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
