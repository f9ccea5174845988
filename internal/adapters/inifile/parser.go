// Package inifile implements ports.SectionParser for INI-style theme
// metadata files using gopkg.in/ini.v1.
package inifile

import (
	"go.trai.ch/iconic/internal/core/domain"
	"go.trai.ch/iconic/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/ini.v1"
)

// Parser parses index.theme content into ordered sections.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses the given file content. Sections and keys keep file order;
// key lookup stays case-sensitive, matching the icon theme format.
func (p *Parser) Parse(data []byte) (ports.Sections, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		// index.theme values may contain unescaped characters that ini
		// would otherwise try to interpret.
		IgnoreInlineComment: true,
	}, data)
	if err != nil {
		return nil, zerr.With(domain.ErrSectionParseFailed, "cause", err.Error())
	}

	var sections ports.Sections
	for _, sec := range file.Sections() {
		if sec.Name() == ini.DefaultSection {
			// index.theme has no keys outside a section.
			continue
		}
		out := ports.Section{
			Name:   sec.Name(),
			Values: make(map[string]ports.Value, len(sec.Keys())),
		}
		for _, key := range sec.Keys() {
			out.Keys = append(out.Keys, key.Name())
			out.Values[key.Name()] = ports.Value(key.Value())
		}
		sections = append(sections, out)
	}
	return sections, nil
}
