package merger

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

type TypeProps struct {
	// Sources are schema names which contributed to the type, in merge order
	Sources []string `json:"sources"`
	// OriginalName is set when the type was emitted under another name
	OriginalName string `json:"originalName,omitempty"`
	// Fields is map[fieldname]schema
	Fields map[string]string `json:"fields,omitempty"`
}

// Provenance represents typename:fieldname:schema mapping of the merged document
type Provenance map[string]*TypeProps

func (p Provenance) props(typename string) *TypeProps {
	if p[typename] == nil {
		p[typename] = &TypeProps{}
	}
	return p[typename]
}

// GetSchemas returns every schema name mentioned in provenance, sorted
func (p Provenance) GetSchemas() []string {
	var schemas []string
	for _, v := range p {
		schemas = append(schemas, v.Sources...)
		schemas = append(schemas, lo.Values(v.Fields)...)
	}

	schemas = lo.Uniq(schemas)
	slices.Sort(schemas)

	return schemas
}

func (p Provenance) AddSources(typename string, schemas ...string) {
	tp := p.props(typename)
	for _, s := range schemas {
		if !lo.Contains(tp.Sources, s) {
			tp.Sources = append(tp.Sources, s)
		}
	}
}

func (p Provenance) SetOriginalName(typename, original string) {
	if typename == original {
		return
	}
	p.props(typename).OriginalName = original
}

func (p Provenance) Set(typename, fieldname, schema string) {
	tp := p.props(typename)
	if tp.Fields == nil {
		tp.Fields = make(map[string]string)
	}

	tp.Fields[fieldname] = schema
}

func (p Provenance) Get(typename, fieldname string) (res string, ok bool) {
	if p[typename] == nil {
		return "", false
	}

	res, ok = p[typename].Fields[fieldname]
	return
}

// GetForType returns schemas which contributed to the type
func (p Provenance) GetForType(typename string) ([]string, bool) {
	if p[typename] == nil {
		return nil, false
	}

	return p[typename].Sources, true
}

// Lookup finds the name under which (schema, original type name) was emitted
func (p Provenance) Lookup(schema, typename string) []string {
	var res []string
	for name, props := range p {
		original := props.OriginalName
		if original == "" {
			original = name
		}
		if original == typename && lo.Contains(props.Sources, schema) {
			res = append(res, name)
		}
	}
	slices.Sort(res)
	return res
}
