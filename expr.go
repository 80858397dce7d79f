package rethinkdb

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// optioner is implemented by named option structs (e.g. RunOpts) that want
// to participate in argument coercion rule 4 (spec.md §4.2): flatten to a
// MAKE_OBJ term whose values are themselves coerced recursively.
type optioner interface {
	toOptions() map[string]interface{}
}

var termType = reflect.TypeOf(Term{})

// Expr is the single polymorphic conversion from any accepted input to a
// Term, applied with the precedence described in spec.md §4.2:
//
//  1. already a Term: passed through unchanged.
//  2. a closure/lambda of arity N: invoked with N fresh VAR leaves, result
//     wrapped in FUNC.
//  3. a plain JSON-serializable scalar: wrapped as a DATUM.
//  4. a named options struct (one implementing optioner): flattened to a
//     MAKE_OBJ term.
//
// Slices, arrays, maps, and plain structs are not scalars: each becomes a
// MAKE_ARRAY or MAKE_OBJ term whose elements/fields are coerced through Expr
// recursively, so a literal array argument may itself contain a lambda or a
// nested subtree (matching how the reference driver treats composite
// literals; see DESIGN.md).
//
// A value matching none of these records a lazy Driver Error on the
// returned Term; it is never sent to the socket (see errors.go).
func Expr(val interface{}) Term {
	switch v := val.(type) {
	case Term:
		return v
	case optioner:
		return makeObjTerm(v.toOptions())
	case nil:
		return newDatum(nil)
	}

	rv := reflect.ValueOf(val)
	if rv.Kind() == reflect.Func {
		return exprFunc(rv)
	}

	switch v := val.(type) {
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return newDatum(v)
	case []byte:
		return newDatum(binaryDatum(v))
	case time.Time:
		return newDatum(timeToDatum(v))
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return exprArray(rv)
	case reflect.Map:
		return exprMap(rv)
	case reflect.Ptr:
		if rv.IsNil() {
			return newDatum(nil)
		}
		return Expr(rv.Elem().Interface())
	case reflect.Interface:
		if rv.IsNil() {
			return newDatum(nil)
		}
		return Expr(rv.Elem().Interface())
	case reflect.Struct:
		return exprStruct(rv)
	}

	return errTerm(fmt.Errorf("rethinkdb: cannot coerce %T to a query argument", val))
}

// exprFunc implements coercion rule 2: a lambda of arity N is invoked with
// N fresh VAR leaves and the result wrapped in a FUNC term whose first
// argument is a MAKE_ARRAY of the chosen variable identifiers (spec.md §3
// "Function term", §4.3 "Lambda Binder").
func exprFunc(fn reflect.Value) Term {
	ft := fn.Type()
	if ft.Kind() != reflect.Func || ft.IsVariadic() {
		return errTerm(fmt.Errorf("rethinkdb: unsupported lambda shape %s", ft))
	}
	arity := ft.NumIn()
	ids := make([]int64, arity)
	args := make([]reflect.Value, arity)
	for i := 0; i < arity; i++ {
		id := nextVarID()
		ids[i] = id
		v := newTerm(termVar, newDatum(id))
		if ft.In(i) == termType {
			args[i] = reflect.ValueOf(v)
		} else if ft.In(i).Kind() == reflect.Interface {
			args[i] = reflect.ValueOf(v).Convert(ft.In(i))
		} else {
			return errTerm(fmt.Errorf("rethinkdb: lambda parameter %d must be Term, got %s", i, ft.In(i)))
		}
	}

	results := fn.Call(args)
	if len(results) != 1 {
		return errTerm(fmt.Errorf("rethinkdb: lambda must return exactly one value, got %d", len(results)))
	}
	body := Expr(results[0].Interface())

	idTerms := make([]interface{}, len(ids))
	for i, id := range ids {
		idTerms[i] = id
	}
	return newTerm(termFunc, newTermFromArgs(termMakeArray, idTerms...), body)
}

func errTerm(err error) Term {
	t := newDatum(nil)
	t.err = &DriverError{Message: strings.TrimPrefix(err.Error(), "rethinkdb: ")}
	return t
}

// exprArray coerces a Go slice/array into a MAKE_ARRAY term, one child per
// element.
func exprArray(rv reflect.Value) Term {
	args := make([]interface{}, rv.Len())
	for i := range args {
		args[i] = rv.Index(i).Interface()
	}
	return newTermFromArgs(termMakeArray, args...)
}

// exprMap coerces a Go map into a MAKE_OBJ term, one opt-arg per entry.
func exprMap(rv reflect.Value) Term {
	t := newTerm(termMakeObj)
	coerced := make(map[string]Term, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		c := Expr(iter.Value().Interface())
		if t.err == nil {
			t.err = c.err
		}
		coerced[fmt.Sprint(iter.Key().Interface())] = c
	}
	t.optArgs = coerced
	return t
}

// exprStruct coerces a plain struct into a MAKE_OBJ term using its `json`
// field tags, the convention the rest of the Go ecosystem uses for
// marshaling documents inserted via Insert/Update.
func exprStruct(rv reflect.Value) Term {
	rt := rv.Type()
	t := newTerm(termMakeObj)
	coerced := make(map[string]Term, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.PkgPath != "" { // unexported
			continue
		}
		name, omitempty, skip := jsonFieldName(f)
		if skip {
			continue
		}
		fv := rv.Field(i)
		if omitempty && fv.IsZero() {
			continue
		}
		c := Expr(fv.Interface())
		if t.err == nil {
			t.err = c.err
		}
		coerced[name] = c
	}
	t.optArgs = coerced
	return t
}

func jsonFieldName(f reflect.StructField) (name string, omitempty, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name = f.Name
	if tag == "" {
		return name, false, false
	}
	parts := splitComma(tag)
	if parts[0] != "" {
		name = parts[0]
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}

func splitComma(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// binaryDatum renders a []byte as the RethinkDB BINARY pseudo-type.
func binaryDatum(v []byte) map[string]interface{} {
	return map[string]interface{}{
		"$reql_type$": "BINARY",
		"data":        base64.StdEncoding.EncodeToString(v),
	}
}

// timeToDatum renders a time.Time as the RethinkDB TIME pseudo-type
// described in spec.md §8 scenario 5.
func timeToDatum(t time.Time) map[string]interface{} {
	_, offset := t.Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	tz := fmt.Sprintf("%s%02d:%02d", sign, offset/3600, (offset%3600)/60)
	return map[string]interface{}{
		"$reql_type$": "TIME",
		"epoch_time":  float64(t.UnixNano()) / 1e9,
		"timezone":    tz,
	}
}

// makeObjTerm builds a MAKE_OBJ term from a map, coercing every value
// through Expr (spec.md §4.2 rule 4).
func makeObjTerm(opts map[string]interface{}) Term {
	t := newTerm(termMakeObj)
	coerced := make(map[string]Term, len(opts))
	for k, v := range opts {
		c := Expr(v)
		if t.err == nil {
			t.err = c.err
		}
		coerced[k] = c
	}
	t.optArgs = coerced
	return t
}
