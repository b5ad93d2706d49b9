// Package vcf provides VCF record, header and writer types.
package vcf

import "strings"

// InfoValue is the value of a single INFO entry. It is either a ListValue
// or a FlagValue.
type InfoValue interface {
	isInfoValue()
}

// ListValue is a list-valued INFO entry, serialized as KEY=a,b,c.
type ListValue []string

// FlagValue marks a flag-type INFO entry, serialized as a bare KEY.
type FlagValue struct{}

func (ListValue) isInfoValue() {}
func (FlagValue) isInfoValue() {}

// InfoEntry is one key/value pair of an INFO field.
type InfoEntry struct {
	Key   string
	Value InfoValue
}

// Info is an ordered INFO field. Entries serialize in insertion order.
type Info struct {
	entries []InfoEntry
	index   map[string]int
}

// AddList sets a list-valued entry.
func (in *Info) AddList(key string, values []string) {
	in.set(key, ListValue(values))
}

// AddFlag sets a flag entry.
func (in *Info) AddFlag(key string) {
	in.set(key, FlagValue{})
}

// set appends key, or replaces its value in place if already present.
func (in *Info) set(key string, v InfoValue) {
	if in.index == nil {
		in.index = make(map[string]int)
	}
	if i, ok := in.index[key]; ok {
		in.entries[i].Value = v
		return
	}
	in.index[key] = len(in.entries)
	in.entries = append(in.entries, InfoEntry{Key: key, Value: v})
}

// Get returns the value stored under key.
func (in *Info) Get(key string) (InfoValue, bool) {
	i, ok := in.index[key]
	if !ok {
		return nil, false
	}
	return in.entries[i].Value, true
}

// Has reports whether key is present.
func (in *Info) Has(key string) bool {
	_, ok := in.index[key]
	return ok
}

// Keys returns the entry keys in emission order.
func (in *Info) Keys() []string {
	keys := make([]string, len(in.entries))
	for i, e := range in.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns the entries in emission order.
func (in *Info) Entries() []InfoEntry {
	return in.entries
}

// Len returns the number of entries.
func (in *Info) Len() int {
	return len(in.entries)
}

// String serializes the INFO field. An empty INFO is ".".
func (in *Info) String() string {
	if len(in.entries) == 0 {
		return "."
	}
	var b strings.Builder
	b.Grow(256)
	in.writeTo(&b)
	return b.String()
}

func (in *Info) writeTo(b *strings.Builder) {
	for i, e := range in.entries {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(e.Key)
		switch v := e.Value.(type) {
		case ListValue:
			b.WriteByte('=')
			for j, s := range v {
				if j > 0 {
					b.WriteByte(',')
				}
				b.WriteString(s)
			}
		case FlagValue:
			// bare key
		}
	}
}
