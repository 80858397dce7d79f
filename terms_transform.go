package rethinkdb

// Filter keeps only the elements of a sequence for which predicate is true.
// predicate is coerced through Expr, so both a Func1 and a write-style
// MAKE_OBJ shorthand (map[string]interface{}) are accepted.
func (t Term) Filter(predicate interface{}) Term { return newTermFromParent(termFilter, t, predicate) }

// Map transforms every element of a sequence with fn.
func (t Term) Map(fn interface{}) Term { return newTermFromParent(termMap, t, fn) }

// ConcatMap flattens the sequences returned by fn into a single sequence.
func (t Term) ConcatMap(fn interface{}) Term { return newTermFromParent(termConcatMap, t, fn) }

// OrderBy sorts a sequence by one or more fields or Asc/Desc-wrapped terms.
func (t Term) OrderBy(keys ...interface{}) Term { return newTermFromParent(termOrderBy, t, keys...) }

// Asc marks a field as ascending sort order within OrderBy.
func Asc(key interface{}) Term { return newTermFromArgs(termAsc, key) }

// Desc marks a field as descending sort order within OrderBy.
func Desc(key interface{}) Term { return newTermFromArgs(termDesc, key) }

// Limit truncates a sequence to at most n elements.
func (t Term) Limit(n interface{}) Term { return newTermFromParent(termSlice, t, 0, n) }

// Skip drops the first n elements of a sequence.
func (t Term) Skip(n interface{}) Term { return newTermFromParent(termSlice, t, n) }

// Nth returns the index'th element of a sequence.
func (t Term) Nth(index interface{}) Term { return newTermFromParent(termNth, t, index) }

// Pluck keeps only the named fields of each document in a sequence.
func (t Term) Pluck(fields ...interface{}) Term { return newTermFromParent(termPluck, t, fields...) }

// Without removes the named fields from each document in a sequence.
func (t Term) Without(fields ...interface{}) Term {
	return newTermFromParent(termWithout, t, fields...)
}

// Merge deep-merges one or more objects/selections into each element.
func (t Term) Merge(objs ...interface{}) Term { return newTermFromParent(termMerge, t, objs...) }

// Append adds value to the end of an array.
func (t Term) Append(value interface{}) Term { return newTermFromParent(termAppend, t, value) }

// Prepend adds value to the start of an array.
func (t Term) Prepend(value interface{}) Term { return newTermFromParent(termPrepend, t, value) }

// Count returns the number of elements in a sequence, or of elements
// matching predicate when one is given.
func (t Term) Count(predicate ...interface{}) Term {
	return newTermFromParent(termCount, t, predicate...)
}

// Distinct removes duplicate elements from a sequence.
func (t Term) Distinct() Term { return newTermFromParent(termDistinct, t) }

// Group partitions a sequence into groups keyed by one or more fields.
func (t Term) Group(keys ...interface{}) Term { return newTermFromParent(termGroup, t, keys...) }

// Ungroup turns a GROUPED_DATA back into an array of {group, reduction} objects.
func (t Term) Ungroup() Term { return newTermFromParent(termUngroup, t) }

// Reduce combines every element of a sequence with a binary function.
func (t Term) Reduce(fn interface{}) Term { return newTermFromParent(termReduce, t, fn) }

// Sum adds up a numeric sequence, or the named field of a sequence of objects.
func (t Term) Sum(field ...interface{}) Term { return newTermFromParent(termSum, t, field...) }

// Avg averages a numeric sequence, or the named field of a sequence of objects.
func (t Term) Avg(field ...interface{}) Term { return newTermFromParent(termAvg, t, field...) }

// Max returns the largest element of a sequence.
func (t Term) Max(field ...interface{}) Term { return newTermFromParent(termMax, t, field...) }

// Min returns the smallest element of a sequence.
func (t Term) Min(field ...interface{}) Term { return newTermFromParent(termMin, t, field...) }

// Union concatenates two or more sequences.
func (t Term) Union(others ...interface{}) Term { return newTermFromParent(termUnion, t, others...) }

// InnerJoin returns the cross-product of two sequences filtered by predicate.
func (t Term) InnerJoin(other interface{}, predicate interface{}) Term {
	return newTermFromParent(termInnerJoin, t, other, predicate)
}

// EqJoin joins a sequence to a table on leftField matching the table's
// primary (or named secondary) index.
func (t Term) EqJoin(leftField interface{}, rightTable Term) Term {
	return newTermFromParent(termEqJoin, t, leftField, rightTable)
}

// HasFields keeps only the elements that contain every given field.
func (t Term) HasFields(fields ...interface{}) Term {
	return newTermFromParent(termHasFields, t, fields...)
}

// IsEmpty reports whether a sequence has no elements.
func (t Term) IsEmpty() Term { return newTermFromParent(termIsEmpty, t) }

// Contains reports whether a sequence contains every given value.
func (t Term) Contains(values ...interface{}) Term {
	return newTermFromParent(termContains, t, values...)
}

// Default substitutes value when the term would otherwise error (most
// commonly a missing field access).
func (t Term) Default(value interface{}) Term { return newTermFromParent(termDefault, t, value) }

// Field accesses a field of an object by name (GET_FIELD / the `[]`
// operator of the original driver).
func (t Term) Field(name interface{}) Term { return newTermFromParent(termGetField, t, name) }
