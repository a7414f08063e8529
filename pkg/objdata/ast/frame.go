package ast

// Frame is one named, numbered animation frame. All scalar directives
// are optional; a nil pointer means the tag never appeared. Elements
// preserve source order, which is meaningful to consumers.
type Frame struct {
	Number uint32 // Frame index, unique within the object
	Name   string // Frame label, e.g. "standing"

	CenterX *int32 // Sprite anchor x offset
	CenterY *int32 // Sprite anchor y offset
	DVx     *int32 // Velocity delta applied on frame entry
	DVy     *int32
	DVz     *int32

	// Input-triggered frame transitions. The capitalised spellings
	// (hit_Fa, hit_Fj, hit_Ua, hit_Uj) follow the data format.
	HitA  *int32 // hit_a
	HitD  *int32 // hit_d
	HitDa *int32 // hit_da
	HitDj *int32 // hit_dj
	HitFa *int32 // hit_Fa
	HitFj *int32 // hit_Fj
	HitJ  *int32 // hit_j
	HitJa *int32 // hit_ja
	HitUa *int32 // hit_Ua
	HitUj *int32 // hit_Uj

	MP    *int32  // Mana cost (negative values recover mana)
	Next  *int32  // Next frame; negative switches facing
	Pic   *uint32 // Sprite cell index
	Sound *Path   // Sound effect played on frame entry
	State *uint32 // Engine state id
	Wait  *uint32 // Frame duration in game ticks

	Elements []Element // Sub-blocks in source order

	Location Location
}

// ElementsOfType returns the frame's elements of the given type,
// preserving source order.
func (f *Frame) ElementsOfType(t ElementType) []Element {
	var out []Element
	for _, e := range f.Elements {
		if e.ElementType() == t {
			out = append(out, e)
		}
	}
	return out
}
