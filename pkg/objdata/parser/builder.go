package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lf2-hq/datafile/pkg/objdata/ast"
	oderrors "lf2-hq/datafile/pkg/objdata/errors"
)

// builder is the semantic mapper: it walks the parse tree bottom-up,
// converts token text into typed values with explicit 32-bit range
// checks, enforces block-level presence rules, and assembles the final
// model. When the same tag appears twice in one block, the last
// occurrence wins; the policy is applied uniformly to every block.
type builder struct {
	s *scanner
}

func newBuilder(s *scanner) *builder {
	return &builder{s: s}
}

func ptr[T any](v T) *T {
	return &v
}

// semanticErr builds a semantic error positioned at the given node.
func (b *builder) semanticErr(node *Node, field, msg string) *oderrors.Error {
	err := &oderrors.Error{
		Type:     oderrors.ErrorTypeSemantic,
		Message:  msg,
		Rule:     string(node.Rule),
		Field:    field,
		Location: b.s.locationAt(node.Span.Start),
		Span:     node.Span,
	}
	return oderrors.AddContextToError(err, b.s.src)
}

// parseInt32 converts an Int token to int32. Overflow of the 32-bit
// target is reported as a numeric range error, never truncated.
func (b *builder) parseInt32(node *Node, field string) (int32, *oderrors.Error) {
	text := node.Text(b.s.src)
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, b.numericErr(node, field, text, err)
	}
	return int32(v), nil
}

// parseUint32 converts a Uint token to uint32 with the same overflow
// policy as parseInt32.
func (b *builder) parseUint32(node *Node, field string) (uint32, *oderrors.Error) {
	text := node.Text(b.s.src)
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, b.numericErr(node, field, text, err)
	}
	return uint32(v), nil
}

func (b *builder) numericErr(node *Node, field, text string, cause error) *oderrors.Error {
	msg := fmt.Sprintf("value %q for field %q does not fit the field's numeric range", text, field)
	if !errors.Is(cause, strconv.ErrRange) {
		msg = fmt.Sprintf("value %q for field %q is not a valid number", text, field)
	}
	err := &oderrors.Error{
		Type:     oderrors.ErrorTypeNumericRange,
		Message:  msg,
		Rule:     string(node.Rule),
		Field:    field,
		Location: b.s.locationAt(node.Span.Start),
		Span:     node.Span,
	}
	return oderrors.AddContextToError(err, b.s.src)
}

// parseFloat converts a Float token. The lexical rule guarantees the
// strconv syntax ("1." parses as 1.0), so only range failures remain.
func (b *builder) parseFloat(node *Node, field string) (float64, *oderrors.Error) {
	text := node.Text(b.s.src)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, b.numericErr(node, field, text, err)
	}
	return v, nil
}

// buildPath splits a Path token into segments, recording the separator
// actually used. A single-segment path defaults to '/'.
func (b *builder) buildPath(node *Node) *ast.Path {
	text := node.Text(b.s.src)
	var sep byte = '/'
	if i := strings.IndexAny(text, `/\`); i >= 0 {
		sep = text[i]
	}
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	return &ast.Path{Segments: segments, Separator: sep}
}

// buildObject maps the root parse tree node to the typed model.
func (b *builder) buildObject(node *Node, sourceName string) (*ast.ObjectData, *oderrors.Error) {
	object := &ast.ObjectData{
		SourceFile: sourceName,
		Location:   b.s.locationAt(node.Span.Start),
	}

	seen := make(map[uint32]bool)
	for _, child := range node.Children {
		switch child.Rule {
		case RuleHeader:
			header, err := b.buildHeader(child)
			if err != nil {
				return nil, err
			}
			object.Header = header
		case RuleFrame:
			frame, err := b.buildFrame(child)
			if err != nil {
				return nil, err
			}
			if seen[frame.Number] {
				return nil, b.semanticErr(child, "frame number",
					fmt.Sprintf("frame number %d is used by more than one frame", frame.Number))
			}
			seen[frame.Number] = true
			object.Frames = append(object.Frames, frame)
		}
	}

	return object, nil
}

// buildHeader maps the header block. The object name and at least one
// complete sprite descriptor are required; every statistic is optional.
func (b *builder) buildHeader(node *Node) (*ast.Header, *oderrors.Error) {
	header := &ast.Header{Location: b.s.locationAt(node.Span.Start)}
	nameSeen := false

	for _, child := range node.Children {
		if child.Rule == RuleSpriteFile {
			sprite, err := b.buildSpriteFile(child)
			if err != nil {
				return nil, err
			}
			header.SpriteFiles = append(header.SpriteFiles, sprite)
			continue
		}

		value := child.Children[0]
		var err *oderrors.Error
		switch child.Name {
		case "name":
			header.Name = value.Text(b.s.src)
			nameSeen = true
		case "head":
			header.Head = b.buildPath(value)
		case "small":
			header.Small = b.buildPath(value)
		case "walking_frame_rate":
			err = setUint(b, value, child.Name, &header.WalkingFrameRate)
		case "walking_speed":
			err = setFloat(b, value, child.Name, &header.WalkingSpeed)
		case "walking_speedz":
			err = setFloat(b, value, child.Name, &header.WalkingSpeedZ)
		case "running_frame_rate":
			err = setUint(b, value, child.Name, &header.RunningFrameRate)
		case "running_speed":
			err = setFloat(b, value, child.Name, &header.RunningSpeed)
		case "running_speedz":
			err = setFloat(b, value, child.Name, &header.RunningSpeedZ)
		case "heavy_walking_speed":
			err = setFloat(b, value, child.Name, &header.HeavyWalkingSpeed)
		case "heavy_walking_speedz":
			err = setFloat(b, value, child.Name, &header.HeavyWalkingSpeedZ)
		case "heavy_running_speed":
			err = setFloat(b, value, child.Name, &header.HeavyRunningSpeed)
		case "heavy_running_speedz":
			err = setFloat(b, value, child.Name, &header.HeavyRunningSpeedZ)
		case "jump_height":
			err = setFloat(b, value, child.Name, &header.JumpHeight)
		case "jump_distance":
			err = setFloat(b, value, child.Name, &header.JumpDistance)
		case "jump_distancez":
			err = setFloat(b, value, child.Name, &header.JumpDistanceZ)
		case "dash_height":
			err = setFloat(b, value, child.Name, &header.DashHeight)
		case "dash_distance":
			err = setFloat(b, value, child.Name, &header.DashDistance)
		case "dash_distancez":
			err = setFloat(b, value, child.Name, &header.DashDistanceZ)
		case "rowing_height":
			err = setFloat(b, value, child.Name, &header.RowingHeight)
		case "rowing_distance":
			err = setFloat(b, value, child.Name, &header.RowingDistance)
		}
		if err != nil {
			return nil, err
		}
	}

	if !nameSeen {
		return nil, b.semanticErr(node, "name", "header is missing the required \"name:\" tag")
	}
	if len(header.SpriteFiles) == 0 {
		return nil, b.semanticErr(node, "file", "header is missing a sprite file descriptor")
	}

	return header, nil
}

// spriteDimOrder is the canonical reporting order for missing
// descriptor sub-tags.
var spriteDimOrder = []string{"w", "h", "row", "col"}

// buildSpriteFile maps one sprite descriptor. All five sub-tags (the
// path plus w, h, row, col) must be present together; partial presence
// is a semantic error naming the missing sub-tags.
func (b *builder) buildSpriteFile(node *Node) (*ast.SpriteFile, *oderrors.Error) {
	sprite := &ast.SpriteFile{Location: b.s.locationAt(node.Span.Start)}
	seen := make(map[string]bool)

	for _, child := range node.Children {
		if child.Rule == RulePath {
			sprite.Path = b.buildPath(child)
			continue
		}

		value := child.Children[0]
		v, err := b.parseUint32(value, child.Name)
		if err != nil {
			return nil, err
		}
		seen[child.Name] = true
		switch child.Name {
		case "w":
			sprite.W = v
		case "h":
			sprite.H = v
		case "row":
			sprite.Row = v
		case "col":
			sprite.Col = v
		}
	}

	var missing []string
	for _, name := range spriteDimOrder {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, b.semanticErr(node, "file",
			fmt.Sprintf("sprite file descriptor is missing sub-tag(s): %s", strings.Join(missing, ", ")))
	}

	return sprite, nil
}

// buildFrame maps one frame block.
func (b *builder) buildFrame(node *Node) (*ast.Frame, *oderrors.Error) {
	frame := &ast.Frame{Location: b.s.locationAt(node.Span.Start)}

	for _, child := range node.Children {
		var err *oderrors.Error
		switch child.Rule {
		case RuleFrameNumber:
			frame.Number, err = b.parseUint32(child, "frame number")
		case RuleFrameName:
			frame.Name = child.Text(b.s.src)
		case RuleTag:
			err = b.setFrameTag(frame, child)
		case RuleBdy, RuleBPoint, RuleCPoint, RuleItr, RuleOPoint, RuleWPoint:
			var element ast.Element
			element, err = b.buildElement(child)
			if err == nil {
				frame.Elements = append(frame.Elements, element)
			}
		}
		if err != nil {
			return nil, err
		}
	}

	return frame, nil
}

func (b *builder) setFrameTag(frame *ast.Frame, tag *Node) *oderrors.Error {
	value := tag.Children[0]
	switch tag.Name {
	case "centerx":
		return setInt(b, value, tag.Name, &frame.CenterX)
	case "centery":
		return setInt(b, value, tag.Name, &frame.CenterY)
	case "dvx":
		return setInt(b, value, tag.Name, &frame.DVx)
	case "dvy":
		return setInt(b, value, tag.Name, &frame.DVy)
	case "dvz":
		return setInt(b, value, tag.Name, &frame.DVz)
	case "hit_a":
		return setInt(b, value, tag.Name, &frame.HitA)
	case "hit_d":
		return setInt(b, value, tag.Name, &frame.HitD)
	case "hit_da":
		return setInt(b, value, tag.Name, &frame.HitDa)
	case "hit_dj":
		return setInt(b, value, tag.Name, &frame.HitDj)
	case "hit_Fa":
		return setInt(b, value, tag.Name, &frame.HitFa)
	case "hit_Fj":
		return setInt(b, value, tag.Name, &frame.HitFj)
	case "hit_j":
		return setInt(b, value, tag.Name, &frame.HitJ)
	case "hit_ja":
		return setInt(b, value, tag.Name, &frame.HitJa)
	case "hit_Ua":
		return setInt(b, value, tag.Name, &frame.HitUa)
	case "hit_Uj":
		return setInt(b, value, tag.Name, &frame.HitUj)
	case "mp":
		return setInt(b, value, tag.Name, &frame.MP)
	case "next":
		return setInt(b, value, tag.Name, &frame.Next)
	case "pic":
		return setUint(b, value, tag.Name, &frame.Pic)
	case "sound":
		frame.Sound = b.buildPath(value)
	case "state":
		return setUint(b, value, tag.Name, &frame.State)
	case "wait":
		return setUint(b, value, tag.Name, &frame.Wait)
	}
	return nil
}

// buildElement maps one element block to its concrete type.
func (b *builder) buildElement(node *Node) (ast.Element, *oderrors.Error) {
	switch node.Rule {
	case RuleBdy:
		return b.buildBdy(node)
	case RuleBPoint:
		return b.buildBPoint(node)
	case RuleCPoint:
		return b.buildCPoint(node)
	case RuleItr:
		return b.buildItr(node)
	case RuleOPoint:
		return b.buildOPoint(node)
	case RuleWPoint:
		return b.buildWPoint(node)
	}
	return nil, b.semanticErr(node, "", fmt.Sprintf("unknown element rule %q", node.Rule))
}

func (b *builder) buildBdy(node *Node) (*ast.Bdy, *oderrors.Error) {
	e := &ast.Bdy{Location: b.s.locationAt(node.Span.Start)}
	for _, tag := range node.Children {
		value := tag.Children[0]
		var err *oderrors.Error
		switch tag.Name {
		case "kind":
			err = setInt(b, value, tag.Name, &e.Kind)
		case "x":
			err = setInt(b, value, tag.Name, &e.X)
		case "y":
			err = setInt(b, value, tag.Name, &e.Y)
		case "w":
			err = setUint(b, value, tag.Name, &e.W)
		case "h":
			err = setUint(b, value, tag.Name, &e.H)
		case "zwidth":
			err = setUint(b, value, tag.Name, &e.ZWidth)
		}
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (b *builder) buildBPoint(node *Node) (*ast.BPoint, *oderrors.Error) {
	e := &ast.BPoint{Location: b.s.locationAt(node.Span.Start)}
	for _, tag := range node.Children {
		value := tag.Children[0]
		var err *oderrors.Error
		switch tag.Name {
		case "x":
			err = setInt(b, value, tag.Name, &e.X)
		case "y":
			err = setInt(b, value, tag.Name, &e.Y)
		}
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (b *builder) buildCPoint(node *Node) (*ast.CPoint, *oderrors.Error) {
	e := &ast.CPoint{Location: b.s.locationAt(node.Span.Start)}
	for _, tag := range node.Children {
		value := tag.Children[0]
		var err *oderrors.Error
		switch tag.Name {
		case "kind":
			err = setUint(b, value, tag.Name, &e.Kind)
		case "x":
			err = setInt(b, value, tag.Name, &e.X)
		case "y":
			err = setInt(b, value, tag.Name, &e.Y)
		case "decrease":
			err = setInt(b, value, tag.Name, &e.Decrease)
		case "dircontrol":
			err = setInt(b, value, tag.Name, &e.DirControl)
		case "hurtable":
			err = setInt(b, value, tag.Name, &e.Hurtable)
		case "injury":
			err = setInt(b, value, tag.Name, &e.Injury)
		case "aaction":
			err = setInt(b, value, tag.Name, &e.AAction)
		case "jaction":
			err = setInt(b, value, tag.Name, &e.JAction)
		case "vaction":
			err = setUint(b, value, tag.Name, &e.VAction)
		case "taction":
			err = setInt(b, value, tag.Name, &e.TAction)
		case "throwinjury":
			err = setInt(b, value, tag.Name, &e.ThrowInjury)
		case "throwvx":
			err = setInt(b, value, tag.Name, &e.ThrowVx)
		case "throwvy":
			err = setInt(b, value, tag.Name, &e.ThrowVy)
		case "throwvz":
			err = setInt(b, value, tag.Name, &e.ThrowVz)
		case "fronthurtact":
			err = setInt(b, value, tag.Name, &e.FrontHurtAct)
		case "backhurtact":
			err = setInt(b, value, tag.Name, &e.BackHurtAct)
		case "cover":
			err = setInt(b, value, tag.Name, &e.Cover)
		}
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (b *builder) buildItr(node *Node) (*ast.Itr, *oderrors.Error) {
	e := &ast.Itr{Location: b.s.locationAt(node.Span.Start)}
	for _, tag := range node.Children {
		value := tag.Children[0]
		var err *oderrors.Error
		switch tag.Name {
		case "kind":
			err = setUint(b, value, tag.Name, &e.Kind)
		case "x":
			err = setInt(b, value, tag.Name, &e.X)
		case "y":
			err = setInt(b, value, tag.Name, &e.Y)
		case "w":
			err = setUint(b, value, tag.Name, &e.W)
		case "h":
			err = setUint(b, value, tag.Name, &e.H)
		case "zwidth":
			err = setUint(b, value, tag.Name, &e.ZWidth)
		case "dvx":
			err = setInt(b, value, tag.Name, &e.DVx)
		case "dvy":
			err = setInt(b, value, tag.Name, &e.DVy)
		case "dvz":
			err = setInt(b, value, tag.Name, &e.DVz)
		case "fall":
			err = setInt(b, value, tag.Name, &e.Fall)
		case "bdefend":
			err = setInt(b, value, tag.Name, &e.BDefend)
		case "injury":
			err = setInt(b, value, tag.Name, &e.Injury)
		case "effect":
			err = setUint(b, value, tag.Name, &e.Effect)
		case "arest":
			err = setUint(b, value, tag.Name, &e.ARest)
		case "vrest":
			err = setUint(b, value, tag.Name, &e.VRest)
		case "catchingact":
			e.CatchingAct, err = b.buildIntPair(tag)
		case "caughtact":
			e.CaughtAct, err = b.buildIntPair(tag)
		}
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

// buildIntPair maps a one-or-two integer tag, preserving how many
// values were written.
func (b *builder) buildIntPair(tag *Node) ([]int32, *oderrors.Error) {
	values := make([]int32, 0, len(tag.Children))
	for _, child := range tag.Children {
		v, err := b.parseInt32(child, tag.Name)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (b *builder) buildOPoint(node *Node) (*ast.OPoint, *oderrors.Error) {
	e := &ast.OPoint{Location: b.s.locationAt(node.Span.Start)}
	for _, tag := range node.Children {
		value := tag.Children[0]
		var err *oderrors.Error
		switch tag.Name {
		case "kind":
			err = setUint(b, value, tag.Name, &e.Kind)
		case "x":
			err = setInt(b, value, tag.Name, &e.X)
		case "y":
			err = setInt(b, value, tag.Name, &e.Y)
		case "action":
			err = setInt(b, value, tag.Name, &e.Action)
		case "dvx":
			err = setInt(b, value, tag.Name, &e.DVx)
		case "dvy":
			err = setInt(b, value, tag.Name, &e.DVy)
		case "oid":
			err = setUint(b, value, tag.Name, &e.OID)
		case "facing":
			var raw uint32
			raw, err = b.parseUint32(value, tag.Name)
			if err == nil {
				e.Facing = ptr(ast.DecodeOPointFacing(raw))
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (b *builder) buildWPoint(node *Node) (*ast.WPoint, *oderrors.Error) {
	e := &ast.WPoint{Location: b.s.locationAt(node.Span.Start)}
	for _, tag := range node.Children {
		value := tag.Children[0]
		var err *oderrors.Error
		switch tag.Name {
		case "kind":
			err = setUint(b, value, tag.Name, &e.Kind)
		case "x":
			err = setInt(b, value, tag.Name, &e.X)
		case "y":
			err = setInt(b, value, tag.Name, &e.Y)
		case "weaponact":
			err = setInt(b, value, tag.Name, &e.WeaponAct)
		case "attacking":
			err = setUint(b, value, tag.Name, &e.Attacking)
		case "cover":
			err = setInt(b, value, tag.Name, &e.Cover)
		case "dvx":
			err = setInt(b, value, tag.Name, &e.DVx)
		case "dvy":
			err = setInt(b, value, tag.Name, &e.DVy)
		case "dvz":
			err = setInt(b, value, tag.Name, &e.DVz)
		}
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

// setInt, setUint, and setFloat convert a value token and store the
// result through the destination pointer. Assigning unconditionally is
// what makes the duplicate-tag policy last-occurrence-wins.
func setInt(b *builder, value *Node, field string, dst **int32) *oderrors.Error {
	v, err := b.parseInt32(value, field)
	if err != nil {
		return err
	}
	*dst = ptr(v)
	return nil
}

func setUint(b *builder, value *Node, field string, dst **uint32) *oderrors.Error {
	v, err := b.parseUint32(value, field)
	if err != nil {
		return err
	}
	*dst = ptr(v)
	return nil
}

func setFloat(b *builder, value *Node, field string, dst **float64) *oderrors.Error {
	v, err := b.parseFloat(value, field)
	if err != nil {
		return err
	}
	*dst = ptr(v)
	return nil
}
