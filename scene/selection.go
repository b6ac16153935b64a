package scene

// Selection is the ordered set of selected objects plus the active one.
//
// The active object is not required to be selected.
type Selection struct {
	Objects []*Object
	Active  *Object
}

// Select returns a Selection of objs with the first one active.
func Select(objs ...*Object) Selection {
	sel := Selection{Objects: objs}
	if len(objs) > 0 {
		sel.Active = objs[0]
	}
	return sel
}

// FirstMarker returns the first marker in selection order.
func (s Selection) FirstMarker() (*Object, bool) {
	for _, o := range s.Objects {
		if o.IsMarker() {
			return o, true
		}
	}
	return nil, false
}

// Contains reports whether o is selected.
func (s Selection) Contains(o *Object) bool {
	for _, candidate := range s.Objects {
		if candidate == o {
			return true
		}
	}
	return false
}

// Without returns a copy of s with every object in drop deselected. The active object is cleared if
// it was dropped.
func (s Selection) Without(drop ...*Object) Selection {
	out := Selection{Active: s.Active}
	for _, o := range s.Objects {
		keep := true
		for _, d := range drop {
			if o == d {
				keep = false
				break
			}
		}
		if keep {
			out.Objects = append(out.Objects, o)
		}
	}
	for _, d := range drop {
		if out.Active == d {
			out.Active = nil
		}
	}
	return out
}

// With returns a copy of s with o selected and active.
func (s Selection) With(o *Object) Selection {
	out := Selection{Active: o}
	out.Objects = append(out.Objects, s.Objects...)
	if !s.Contains(o) {
		out.Objects = append(out.Objects, o)
	}
	return out
}
