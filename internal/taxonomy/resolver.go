package taxonomy

// areaTable is one work area's slice of the catalog. An area either declares
// specializations, each with its own title list, or a direct title list.
type areaTable struct {
	area            WorkArea
	specializations []specTable
	titles          []string
}

type specTable struct {
	spec   Specialization
	titles []string
}

// catalog is the ordered table-of-tables. Order here is display order.
var catalog = []areaTable{
	itTable,
	customerServiceTable,
	financeTable,
	engineeringTable,
	hospitalityTable,
	publicSectorTable,
	legalTable,
	manufacturingTable,
	researchTable,
	salesTable,
	qualityAssuranceTable,
	marketingTable,
	hrTable,
	pharmaTable,
	energyTable,
}

type specEntry struct {
	area   WorkArea
	titles []string
}

type index struct {
	areas map[WorkArea]*areaTable
	specs map[Specialization]specEntry
}

var idx = buildIndex(catalog)

func buildIndex(tables []areaTable) index {
	ix := index{
		areas: make(map[WorkArea]*areaTable, len(tables)),
		specs: make(map[Specialization]specEntry),
	}
	for i := range tables {
		t := &tables[i]
		ix.areas[t.area] = t
		for _, s := range t.specializations {
			ix.specs[s.spec] = specEntry{area: t.area, titles: s.titles}
		}
	}
	return ix
}

// Areas returns every selectable work area in display order, with AreaOther last.
func Areas() []WorkArea {
	out := make([]WorkArea, 0, len(catalog)+1)
	for _, t := range catalog {
		out = append(out, t.area)
	}
	return append(out, AreaOther)
}

// SpecializationsFor returns the ordered specializations of area. Areas without a
// specialization tier, AreaOther and unknown labels give an empty list.
func SpecializationsFor(area WorkArea) []Specialization {
	t, ok := idx.areas[area]
	if !ok {
		return []Specialization{}
	}
	out := make([]Specialization, len(t.specializations))
	for i, s := range t.specializations {
		out[i] = s.spec
	}
	return out
}

// TitlesFor returns the ordered job titles of spec, or an empty list when spec is
// unknown or has no backing titles.
func TitlesFor(spec Specialization) []string {
	e, ok := idx.specs[spec]
	if !ok {
		return []string{}
	}
	return clone(e.titles)
}

// TitlesIn is TitlesFor scoped to area: a specialization belonging to a different
// area resolves to an empty list.
func TitlesIn(area WorkArea, spec Specialization) []string {
	e, ok := idx.specs[spec]
	if !ok || e.area != area {
		return []string{}
	}
	return clone(e.titles)
}

// TitlesForArea returns the direct title list of an area that has no
// specialization tier.
func TitlesForArea(area WorkArea) []string {
	t, ok := idx.areas[area]
	if !ok {
		return []string{}
	}
	return clone(t.titles)
}

// HasSpecializations reports whether area shows a specialization dropdown.
func HasSpecializations(area WorkArea) bool {
	t, ok := idx.areas[area]
	return ok && len(t.specializations) > 0
}

// HasDirectTitles reports whether area goes straight to a title dropdown.
func HasDirectTitles(area WorkArea) bool {
	t, ok := idx.areas[area]
	return ok && len(t.specializations) == 0 && len(t.titles) > 0
}

// AreaOf returns the work area that owns spec.
func AreaOf(spec Specialization) (WorkArea, bool) {
	e, ok := idx.specs[spec]
	return e.area, ok
}

// Gap is a declared specialization without a backing title list.
type Gap struct {
	Area           WorkArea       `json:"work_area"`
	Specialization Specialization `json:"specialization"`
}

// Gaps lists every specialization whose title list is empty, in catalog order.
func Gaps() []Gap {
	var gaps []Gap
	for _, t := range catalog {
		for _, s := range t.specializations {
			if len(s.titles) == 0 {
				gaps = append(gaps, Gap{Area: t.area, Specialization: s.spec})
			}
		}
	}
	return gaps
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
