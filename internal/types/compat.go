package types

// compatible implements compat(lhs, rhs) from §4.3.5: whether a value
// of type rhs may be stored into a location of type lhs. It is
// directional and recurses through Pointer inners.
func (c *Checker) compatible(lhs, rhs TypeId) bool {
	lt := c.prog.Types.Get(lhs)
	rt := c.prog.Types.Get(rhs)

	if lt.Kind == KindVoid && rt.Kind == KindVoid {
		return true
	}
	if isIntegerKind(lt.Kind) && isIntegerKind(rt.Kind) {
		lw, rw := widthOfKind(lt.Kind), widthOfKind(rt.Kind)
		lsigned, rsigned := isSignedKind(lt.Kind), isSignedKind(rt.Kind)
		if lsigned == rsigned && lw >= rw {
			return true
		}
		if lsigned && !rsigned && lw > rw {
			return true
		}
		return false
	}
	if lt.Kind == KindChar && rt.Kind == KindChar {
		return true
	}
	if lt.Kind == KindBool && rt.Kind == KindBool {
		return true
	}
	if lt.Kind == KindPointer && rt.Kind == KindPointer {
		if !c.compatible(lt.Inner, rt.Inner) {
			return false
		}
		if lt.PointerKind == Strong && rt.PointerKind != Strong {
			return false
		}
		return true
	}
	if lt.Kind == KindArray && rt.Kind == KindArray {
		return lt.Size == rt.Size && lt.Inner == rt.Inner
	}
	if lt.Kind == KindSlice && (rt.Kind == KindArray || rt.Kind == KindSlice) {
		return lt.Inner == rt.Inner
	}
	return false
}
