package rethinkdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFunc_HygieneDistinctVarIDs(t *testing.T) {
	// encode(func(x) { return func(y) { return x + y } }) must bind two
	// distinct VAR ids, and rebuilding the same shape again must never
	// reuse an id already handed out (spec.md §8 "Lambda hygiene").
	before := varCounter

	outer := Func1(func(x Term) Term {
		return Func1(func(y Term) Term {
			return x.Add(y)
		})
	})

	outerVarIDs := outer.args[0].args
	require.Len(t, outerVarIDs, 1)
	outerID := outerVarIDs[0].datum.(int64)

	// descend into the FUNC body to find the inner FUNC term
	innerFunc := outer.args[1]
	require.Equal(t, termFunc, innerFunc.termType)
	innerID := innerFunc.args[0].args[0].datum.(int64)

	require.NotEqual(t, outerID, innerID)
	require.Greater(t, varCounter, before)

	rebuilt := Func1(func(x Term) Term { return x })
	rebuiltID := rebuilt.args[0].args[0].datum.(int64)
	require.Greater(t, rebuiltID, innerID)
}

func TestFunc_ArityTwoAndThree(t *testing.T) {
	two := Func2(func(a, b Term) Term { return a.Add(b) })
	require.Len(t, two.args[0].args, 2)

	three := Func3(func(a, b, c Term) Term { return a.Add(b).Add(c) })
	require.Len(t, three.args[0].args, 3)
}

func TestRow_IsImplicitVar(t *testing.T) {
	require.Equal(t, termImplicitVar, Row.termType)
}
