package ast

// ElementType identifies the concrete type of an Element.
type ElementType string

const (
	ElementTypeBdy    ElementType = "bdy"
	ElementTypeBPoint ElementType = "bpoint"
	ElementTypeCPoint ElementType = "cpoint"
	ElementTypeItr    ElementType = "itr"
	ElementTypeOPoint ElementType = "opoint"
	ElementTypeWPoint ElementType = "wpoint"
)

// Element is one typed sub-block of a frame. The set of implementations
// is closed: Bdy, BPoint, CPoint, Itr, OPoint, WPoint.
type Element interface {
	ElementType() ElementType
	elementNode()
}

// Bdy is a body (hurt) box: the region of the object that other
// objects' Itr boxes can interact with.
type Bdy struct {
	Kind   *int32 // 0 = normal; 1000+n marks a freeable hostage body
	X      *int32
	Y      *int32
	W      *uint32
	H      *uint32
	ZWidth *uint32

	Location Location
}

// BPoint is the bleeding anchor point shown when the character is at
// low health.
type BPoint struct {
	X *int32
	Y *int32

	Location Location
}

// CPoint aligns a catching character with the one being caught, and
// describes what each may do in that state.
type CPoint struct {
	Kind         *uint32 // 1 = catcher, 2 = caught
	X            *int32
	Y            *int32
	Decrease     *int32 // Catch timer drain per tick
	DirControl   *int32 // Whether the catcher may turn around
	Hurtable     *int32 // Whether the caught character can be hit by others
	Injury       *int32
	AAction      *int32  // Frame on attack input
	JAction      *int32  // Frame on jump input
	VAction      *uint32 // Frame the caught character is held in
	TAction      *int32  // Frame on taunt input
	ThrowInjury  *int32
	ThrowVx      *int32
	ThrowVy      *int32
	ThrowVz      *int32
	FrontHurtAct *int32
	BackHurtAct  *int32
	Cover        *int32 // Draw order relative to the caught character

	Location Location
}

// Itr is an interaction (attack) box that this object places on others.
type Itr struct {
	Kind   *uint32
	X      *int32
	Y      *int32
	W      *uint32
	H      *uint32
	ZWidth *uint32
	DVx    *int32
	DVy    *int32
	DVz    *int32

	Fall    *int32 // Knock-down potential
	BDefend *int32 // Defense-break potential
	Injury  *int32 // Damage dealt
	Effect  *uint32
	ARest   *uint32 // Attacker rest: ticks before this object may hit again
	VRest   *uint32 // Victim rest: ticks before the victim may be hit again

	// Frame transitions used by catching interactions. Each holds one
	// or two values as written in the source.
	CatchingAct []int32
	CaughtAct   []int32

	Location Location
}

// OPointFacingDir is the facing of a spawned object relative to its
// parent.
type OPointFacingDir string

const (
	// FacingParentSame faces the same direction as the parent.
	FacingParentSame OPointFacingDir = "parent_same"
	// FacingParentOpposite faces the opposite direction to the parent.
	FacingParentOpposite OPointFacingDir = "parent_opposite"
	// FacingRight always faces to the right.
	FacingRight OPointFacingDir = "right"
)

// OPointFacing is the number of objects an opoint spawns and the
// direction they face, decoded from the packed facing value.
type OPointFacing struct {
	Count     uint32
	Direction OPointFacingDir
}

// DecodeOPointFacing decodes the packed facing value. 0 and 1 spawn a
// single object facing with or against the parent; 10 spawns one
// object that always faces right. Any other value spawns value/10
// objects, facing with the parent when the value is even and against
// it when odd.
func DecodeOPointFacing(value uint32) OPointFacing {
	switch value {
	case 0:
		return OPointFacing{Count: 1, Direction: FacingParentSame}
	case 1:
		return OPointFacing{Count: 1, Direction: FacingParentOpposite}
	case 10:
		return OPointFacing{Count: 1, Direction: FacingRight}
	}
	direction := FacingParentSame
	if value&1 == 1 {
		direction = FacingParentOpposite
	}
	return OPointFacing{Count: value / 10, Direction: direction}
}

// OPoint spawns another object, e.g. a projectile or a dropped weapon.
type OPoint struct {
	Kind   *uint32 // 1 = spawn, 2 = hold as light weapon
	X      *int32
	Y      *int32
	Action *int32 // Frame the spawned object starts in
	DVx    *int32
	DVy    *int32
	OID    *uint32 // Object id of the spawned object
	Facing *OPointFacing

	Location Location
}

// WPoint positions and controls a held weapon.
type WPoint struct {
	Kind      *uint32 // 1 = holding, 2 = held, 3 = dropping
	X         *int32
	Y         *int32
	WeaponAct *int32  // Frame the weapon switches to
	Attacking *uint32 // Weapon strength table row
	Cover     *int32  // Draw order relative to the holder
	DVx       *int32
	DVy       *int32
	DVz       *int32

	Location Location
}

func (*Bdy) ElementType() ElementType    { return ElementTypeBdy }
func (*BPoint) ElementType() ElementType { return ElementTypeBPoint }
func (*CPoint) ElementType() ElementType { return ElementTypeCPoint }
func (*Itr) ElementType() ElementType    { return ElementTypeItr }
func (*OPoint) ElementType() ElementType { return ElementTypeOPoint }
func (*WPoint) ElementType() ElementType { return ElementTypeWPoint }

func (*Bdy) elementNode()    {}
func (*BPoint) elementNode() {}
func (*CPoint) elementNode() {}
func (*Itr) elementNode()    {}
func (*OPoint) elementNode() {}
func (*WPoint) elementNode() {}

// Known kind values, informative only. The parser accepts any integer
// kind; interpreting unknown kinds is left to consumers.
const (
	ItrKindNormal           uint32 = 0
	ItrKindCatchStunned     uint32 = 1
	ItrKindWeaponPick       uint32 = 2
	ItrKindCatchForce       uint32 = 3
	ItrKindFalling          uint32 = 4
	ItrKindWeaponStrength   uint32 = 5
	ItrKindSuperPunch       uint32 = 6
	ItrKindRollWeaponPick   uint32 = 7
	ItrKindHealBall         uint32 = 8
	ItrKindReflectiveShield uint32 = 9

	CPointKindCatcher uint32 = 1
	CPointKindCaught  uint32 = 2

	OPointKindSpawn           uint32 = 1
	OPointKindHoldLightWeapon uint32 = 2

	WPointKindHolding  uint32 = 1
	WPointKindHeld     uint32 = 2
	WPointKindDropping uint32 = 3
)
