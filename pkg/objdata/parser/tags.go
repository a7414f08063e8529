package parser

import "sort"

// valueClass is the lexical class of a tag's value.
type valueClass int

const (
	valueInt valueClass = iota
	valueUint
	valueFloat
	valuePath
	valueObjectName
	// valueIntPair holds one or two integers, e.g. "catchingact: 3 4".
	valueIntPair
)

func (c valueClass) String() string {
	switch c {
	case valueInt:
		return "Int"
	case valueUint:
		return "Uint"
	case valueFloat:
		return "Float"
	case valuePath:
		return "Path"
	case valueObjectName:
		return "ObjectName"
	case valueIntPair:
		return "Int [Int]"
	default:
		return "unknown"
	}
}

// tagDef pairs a literal keyword with the lexical class of its value.
// The ':' after a keyword is optional: header statistics are written
// without it, frame and element tags with it.
type tagDef struct {
	keyword string
	class   valueClass
}

// tagTable is the tag vocabulary of one block, kept sorted so that the
// longest keyword is always tried first. Several keywords are textual
// prefixes of others (walking_speed / walking_speedz, dash_distance /
// dash_distancez); matching the longer alternative first is a
// correctness requirement, not a style choice.
type tagTable struct {
	name string // block name used in error messages
	defs []tagDef
}

func newTagTable(name string, defs []tagDef) *tagTable {
	sorted := make([]tagDef, len(defs))
	copy(sorted, defs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].keyword) > len(sorted[j].keyword)
	})
	return &tagTable{name: name, defs: sorted}
}

// keywords returns the table's keywords in declaration-length order,
// used to build expected-token sets for diagnostics.
func (t *tagTable) keywords() []string {
	out := make([]string, len(t.defs))
	for i, d := range t.defs {
		out[i] = d.keyword
	}
	return out
}

var headerTags = newTagTable("Header", []tagDef{
	{"name", valueObjectName},
	{"head", valuePath},
	{"small", valuePath},
	{"walking_frame_rate", valueUint},
	{"walking_speedz", valueFloat},
	{"walking_speed", valueFloat},
	{"running_frame_rate", valueUint},
	{"running_speedz", valueFloat},
	{"running_speed", valueFloat},
	{"heavy_walking_speedz", valueFloat},
	{"heavy_walking_speed", valueFloat},
	{"heavy_running_speedz", valueFloat},
	{"heavy_running_speed", valueFloat},
	{"jump_height", valueFloat},
	{"jump_distancez", valueFloat},
	{"jump_distance", valueFloat},
	{"dash_height", valueFloat},
	{"dash_distancez", valueFloat},
	{"dash_distance", valueFloat},
	{"rowing_height", valueFloat},
	{"rowing_distance", valueFloat},
})

// spriteDimTags are the dimension sub-tags of a sprite descriptor. The
// canonical order is w, h, row, col; the structural parser accepts any
// order and the mapper enforces that all of them are present.
var spriteDimTags = newTagTable("SpriteFile", []tagDef{
	{"w", valueUint},
	{"h", valueUint},
	{"row", valueUint},
	{"col", valueUint},
})

var frameTags = newTagTable("Frame", []tagDef{
	{"centerx", valueInt},
	{"centery", valueInt},
	{"dvx", valueInt},
	{"dvy", valueInt},
	{"dvz", valueInt},
	{"hit_a", valueInt},
	{"hit_d", valueInt},
	{"hit_da", valueInt},
	{"hit_dj", valueInt},
	{"hit_Fa", valueInt},
	{"hit_Fj", valueInt},
	{"hit_j", valueInt},
	{"hit_ja", valueInt},
	{"hit_Ua", valueInt},
	{"hit_Uj", valueInt},
	{"mp", valueInt},
	{"next", valueInt},
	{"pic", valueUint},
	{"sound", valuePath},
	{"state", valueUint},
	{"wait", valueUint},
})

var bdyTags = newTagTable("Bdy", []tagDef{
	{"kind", valueInt},
	{"x", valueInt},
	{"y", valueInt},
	{"w", valueUint},
	{"h", valueUint},
	{"zwidth", valueUint},
})

var bpointTags = newTagTable("BPoint", []tagDef{
	{"x", valueInt},
	{"y", valueInt},
})

var cpointTags = newTagTable("CPoint", []tagDef{
	{"kind", valueUint},
	{"x", valueInt},
	{"y", valueInt},
	{"decrease", valueInt},
	{"dircontrol", valueInt},
	{"hurtable", valueInt},
	{"injury", valueInt},
	{"aaction", valueInt},
	{"jaction", valueInt},
	{"vaction", valueUint},
	{"taction", valueInt},
	{"throwinjury", valueInt},
	{"throwvx", valueInt},
	{"throwvy", valueInt},
	{"throwvz", valueInt},
	{"fronthurtact", valueInt},
	{"backhurtact", valueInt},
	{"cover", valueInt},
})

var itrTags = newTagTable("Itr", []tagDef{
	{"kind", valueUint},
	{"x", valueInt},
	{"y", valueInt},
	{"w", valueUint},
	{"h", valueUint},
	{"zwidth", valueUint},
	{"dvx", valueInt},
	{"dvy", valueInt},
	{"dvz", valueInt},
	{"fall", valueInt},
	{"bdefend", valueInt},
	{"injury", valueInt},
	{"effect", valueUint},
	{"arest", valueUint},
	{"vrest", valueUint},
	{"catchingact", valueIntPair},
	{"caughtact", valueIntPair},
})

var opointTags = newTagTable("OPoint", []tagDef{
	{"kind", valueUint},
	{"x", valueInt},
	{"y", valueInt},
	{"action", valueInt},
	{"dvx", valueInt},
	{"dvy", valueInt},
	{"oid", valueUint},
	{"facing", valueUint},
})

var wpointTags = newTagTable("WPoint", []tagDef{
	{"kind", valueUint},
	{"x", valueInt},
	{"y", valueInt},
	{"weaponact", valueInt},
	{"attacking", valueUint},
	{"cover", valueInt},
	{"dvx", valueInt},
	{"dvy", valueInt},
	{"dvz", valueInt},
})
