package services

import (
	"net/url"
	"strings"
)

// Parameter keys understood by the catalog API.
const (
	ParamName       = "name"
	ParamID         = "id"
	ParamIDArray    = "ids[]"
	ParamArtistName = "artist_name"
	ParamTerm       = "term"
)

// Param is a single key/value pair.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered multimap. Keys may repeat and insertion order is kept.
type Params []Param

// NewParams builds Params from alternating keys and values. A trailing key without a value is dropped.
func NewParams(kv ...string) Params {
	p := make(Params, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		p = append(p, Param{Key: kv[i], Value: kv[i+1]})
	}
	return p
}

// Add appends a pair.
func (p *Params) Add(key, value string) {
	*p = append(*p, Param{Key: key, Value: value})
}

// Get returns every value for key in insertion order.
func (p Params) Get(key string) []string {
	var values []string
	for _, kv := range p {
		if kv.Key == key {
			values = append(values, kv.Value)
		}
	}
	return values
}

// First returns the first value for key.
func (p Params) First(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Without returns a copy of p with every pair for key removed.
func (p Params) Without(key string) Params {
	out := make(Params, 0, len(p))
	for _, kv := range p {
		if kv.Key != key {
			out = append(out, kv)
		}
	}
	return out
}

func (p Params) Len() int { return len(p) }

// Clone returns an independent copy.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	return append(Params(nil), p...)
}

// Encode serializes the pairs as key=value joined by '&', in insertion order.
// Values are form-escaped; brackets in keys stay literal so id arrays read as ids[]=A&ids[]=B.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escapeKey(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

var bracketUnescaper = strings.NewReplacer("%5B", "[", "%5D", "]")

func escapeKey(key string) string {
	return bracketUnescaper.Replace(url.QueryEscape(key))
}
