package creature

import "strconv"

// QueryKind says how a query identifies a creature.
type QueryKind int

// Query kinds
const (
	KindByName QueryKind = iota
	KindByID
)

// String returns a short label for logs.
func (k QueryKind) String() string {
	if k == KindByID {
		return "by_id"
	}
	return "by_name"
}

// Query is a single lookup request built from user input.
type Query struct {
	Kind QueryKind
	// Name is set for KindByName. It may be empty; the service decides.
	Name string
	// ID is set for KindByID.
	ID int
	// Raw is the trimmed input the query was built from.
	Raw string
}

// ByName builds a name query.
func ByName(name string) Query {
	return Query{Kind: KindByName, Name: name, Raw: name}
}

// ByID builds an id query.
func ByID(id int) Query {
	return Query{Kind: KindByID, ID: id, Raw: strconv.Itoa(id)}
}

// PathValue returns the text placed in the final path segment of the
// request URL: the trimmed input exactly as typed.
func (q Query) PathValue() string {
	if q.Raw != "" {
		return q.Raw
	}
	if q.Kind == KindByID {
		return strconv.Itoa(q.ID)
	}
	return q.Name
}
