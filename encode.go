package rethinkdb

// Encode lowers a Term into the QL2 JSON wire shape described in spec.md
// §4.1: a bare literal for DATUM nodes, otherwise `[term_code, args, opts]`
// with trailing empty args/opts elided. It is the only place that inspects
// a Term's internal shape; everything else in the package only builds
// Terms.
//
// MAKE_ARRAY/MAKE_OBJ subtrees are never collapsed to bare JSON even when
// they are provably literal, although spec.md §4.1 allows it as an optional
// optimization ("the server accepts either form"): the tagged form is what
// the golden vectors in spec.md §8 scenario 1 expect, so this encoder
// always emits it.
func (t Term) Encode() (interface{}, error) {
	if err := t.firstErr(); err != nil {
		return nil, err
	}
	return t.encodeNode(), nil
}

func (t Term) firstErr() error {
	if t.err != nil {
		return t.err
	}
	return nil
}

func (t Term) encodeNode() interface{} {
	if t.isDatum {
		return encodeDatumValue(t.datum)
	}

	var argsEnc []interface{}
	if len(t.args) > 0 {
		argsEnc = make([]interface{}, len(t.args))
		for i, a := range t.args {
			argsEnc[i] = a.encodeNode()
		}
	}

	var optsEnc map[string]interface{}
	if len(t.optArgs) > 0 {
		optsEnc = make(map[string]interface{}, len(t.optArgs))
		for k, v := range t.optArgs {
			optsEnc[k] = v.encodeNode()
		}
	}

	switch {
	case len(argsEnc) == 0 && len(optsEnc) == 0:
		return []interface{}{int32(t.termType)}
	case len(optsEnc) == 0:
		return []interface{}{int32(t.termType), argsEnc}
	default:
		if argsEnc == nil {
			argsEnc = []interface{}{}
		}
		return []interface{}{int32(t.termType), argsEnc, optsEnc}
	}
}

// encodeDatumValue passes a literal through unchanged. Maps/slices/scalars
// produced by Expr are already plain Go values safe for the JSON encoder;
// this exists as a single seam so special literal shapes (e.g. time/binary
// pseudo-types, see expr.go) can be normalized in one place.
func encodeDatumValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Term:
		// Defensive: a Term should never end up boxed as a datum payload,
		// but if Expr ever changes, encode it rather than emit garbage.
		return val.encodeNode()
	default:
		return val
	}
}
