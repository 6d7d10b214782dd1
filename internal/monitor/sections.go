package monitor

import (
	"fmt"
	"strings"
)

// Sections selects which samplers run in a cycle.
type Sections uint8

const (
	SectionCPU Sections = 1 << iota
	SectionMemory
	SectionUptime
	SectionDisk
	SectionProcesses

	AllSections = SectionCPU | SectionMemory | SectionUptime | SectionDisk | SectionProcesses
)

var sectionNames = []struct {
	section Sections
	name    string
}{
	{SectionCPU, "cpu"},
	{SectionMemory, "memory"},
	{SectionUptime, "uptime"},
	{SectionDisk, "disk"},
	{SectionProcesses, "processes"},
}

func (s Sections) Has(section Sections) bool {
	return s&section == section
}

func (s Sections) With(section Sections) Sections {
	return s | section
}

// Names lists the selected sections in display order.
func (s Sections) Names() []string {
	var names []string
	for _, sn := range sectionNames {
		if s.Has(sn.section) {
			names = append(names, sn.name)
		}
	}
	return names
}

func (s Sections) String() string {
	if s == 0 {
		return "none"
	}
	return strings.Join(s.Names(), ",")
}

// ParseSections builds a set from section names. "all" selects everything;
// an empty list also selects everything.
func ParseSections(names []string) (Sections, error) {
	var s Sections
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "all" {
			s = AllSections
			continue
		}
		section, ok := lookupSection(name)
		if !ok {
			return 0, fmt.Errorf("unknown section %q", name)
		}
		s = s.With(section)
	}
	if s == 0 {
		return AllSections, nil
	}
	return s, nil
}

func lookupSection(name string) (Sections, bool) {
	for _, sn := range sectionNames {
		if sn.name == name {
			return sn.section, true
		}
	}
	return 0, false
}
