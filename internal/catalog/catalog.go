package catalog

// Meta is the descriptive header of a catalog document.
type Meta struct {
	Source          string `json:"source,omitempty" yaml:"source,omitempty"`
	Term            string `json:"term,omitempty" yaml:"term,omitempty"`
	TotalActivities int    `json:"totalActivities" yaml:"totalActivities"`
	FreeActivities  int    `json:"freeActivities" yaml:"freeActivities"`
	PaidActivities  int    `json:"paidActivities" yaml:"paidActivities"`
}

// Document is the on-disk shape of one campus catalog.
type Document struct {
	Meta       Meta              `json:"meta" yaml:"meta"`
	Categories map[string]string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Levels     map[string]string `json:"levels,omitempty" yaml:"levels,omitempty"`
	Activities []Activity        `json:"activities" yaml:"activities"`
}

// Catalog is an immutable, id-indexed set of activities for one campus.
// A nil *Catalog behaves like an empty one.
type Catalog struct {
	meta       Meta
	categories map[string]string
	activities []Activity
	byID       map[string]int
}

// New builds a catalog from activities. When an id repeats, the first
// occurrence wins and later ones are dropped.
func New(meta Meta, activities []Activity) *Catalog {
	c := &Catalog{
		meta:       meta,
		activities: make([]Activity, 0, len(activities)),
		byID:       make(map[string]int, len(activities)),
	}
	for _, a := range activities {
		if _, dup := c.byID[a.ID]; dup {
			continue
		}
		c.byID[a.ID] = len(c.activities)
		c.activities = append(c.activities, a)
	}
	return c
}

// FromDocument indexes a decoded catalog document.
func FromDocument(doc Document) *Catalog {
	c := New(doc.Meta, doc.Activities)
	c.categories = doc.Categories
	return c
}

// Empty returns a catalog with no activities.
func Empty() *Catalog {
	return New(Meta{}, nil)
}

// Lookup resolves an activity id.
func (c *Catalog) Lookup(id string) (Activity, bool) {
	if c == nil {
		return Activity{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Activity{}, false
	}
	return c.activities[i], true
}

// Activities returns the activities in document order. The slice is a
// copy; callers may sort it.
func (c *Catalog) Activities() []Activity {
	if c == nil {
		return nil
	}
	out := make([]Activity, len(c.activities))
	copy(out, c.activities)
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.activities)
}

func (c *Catalog) Meta() Meta {
	if c == nil {
		return Meta{}
	}
	return c.meta
}

// CategoryLabel returns the display label for a category key, or the key
// itself when the document carries no label.
func (c *Catalog) CategoryLabel(key string) string {
	if c != nil {
		if l, ok := c.categories[key]; ok && l != "" {
			return l
		}
	}
	return key
}
