package proc

const (
	KeyData     = "data"
	KeyMetadata = "metadata"
)

// Metadata is side information accumulated along a chain.
type Metadata map[string]any

// Record is the unit flowing through a processor chain.
//
// A Record is immutable by convention: every method returns a new Record and
// leaves the receiver untouched. Processors must not write into the record
// they receive.
type Record map[string]any

// NewRecord creates a record holding data and no metadata.
func NewRecord(data string) Record {
	return Record{KeyData: data}
}

// Data returns the content of the record. Byte slices are read as strings.
func (r Record) Data() (string, bool) {
	switch v := r[KeyData].(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

// Metadata returns the metadata of the record; an absent mapping reads as empty.
// The returned map is shared with the record and must be treated as read-only.
func (r Record) Metadata() Metadata {
	if m, ok := asMetadata(r[KeyMetadata]); ok && m != nil {
		return m
	}
	return Metadata{}
}

func (r Record) Value(key string) (any, bool) {
	v, ok := r[key]
	return v, ok
}

// With returns a copy of r with key set to value.
func (r Record) With(key string, value any) Record {
	out := r.Clone()
	out[key] = value
	return out
}

// Clone returns a shallow copy of r; the metadata mapping is copied too.
func (r Record) Clone() Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	if m, ok := asMetadata(r[KeyMetadata]); ok && m != nil {
		out[KeyMetadata] = m.clone()
	}
	return out
}

// Merge layers partial on top of r. Every key overwrites the one in r except
// metadata, whose entries are merged key by key with the new ones winning.
func (r Record) Merge(partial map[string]any) Record {
	out := r.Clone()
	for k, v := range partial {
		if k != KeyMetadata {
			out[k] = v
			continue
		}
		m, ok := asMetadata(v)
		if !ok {
			out[k] = v
			continue
		}
		out[k] = MergeMetadata(r.Metadata(), m)
	}
	return out
}

// MergeMetadata returns a new mapping holding old overlaid with next.
func MergeMetadata(old, next Metadata) Metadata {
	out := make(Metadata, len(old)+len(next))
	for k, v := range old {
		out[k] = v
	}
	for k, v := range next {
		out[k] = v
	}
	return out
}

func (m Metadata) clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func asMetadata(v any) (Metadata, bool) {
	switch m := v.(type) {
	case Metadata:
		return m, true
	case map[string]any:
		return Metadata(m), true
	case Record:
		return Metadata(m), true
	case nil:
		return nil, true
	default:
		if mm, ok := reflectMapping(v); ok {
			return Metadata(mm), true
		}
		return nil, false
	}
}
