package ir

import "testing"

func TestCompareRank(t *testing.T) {
	// Null < Bool < String < Array < Object
	ordered := []*Node{
		Null(),
		FromBool(false),
		FromBool(true),
		FromString("a"),
		FromString("b"),
		FromSlice(nil),
		FromSlice([]*Node{FromString("x")}),
		FromKeyVals(nil),
		FromKeyVals([]KeyVal{{Key: FromString("k"), Val: Null()}}),
	}
	for i := range ordered {
		for j := range ordered {
			c := Compare(ordered[i], ordered[j])
			switch {
			case i == j && c != 0:
				t.Errorf("Compare(%d, %d) = %d, want 0", i, j, c)
			case i < j && c != -1:
				t.Errorf("Compare(%d, %d) = %d, want -1", i, j, c)
			case i > j && c != 1:
				t.Errorf("Compare(%d, %d) = %d, want 1", i, j, c)
			}
		}
	}
}

func TestCompareNil(t *testing.T) {
	if Compare(nil, nil) != 0 {
		t.Error("Compare(nil, nil) != 0")
	}
	if Compare(nil, Null()) != -1 {
		t.Error("nil should sort before any node")
	}
	if Compare(Null(), nil) != 1 {
		t.Error("any node should sort after nil")
	}
}

func TestCompareObjectsOrderIndependent(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: FromString("x"), Val: FromBool(true)},
		{Key: FromString("y"), Val: FromString("v")},
	})
	b := FromKeyVals([]KeyVal{
		{Key: FromString("y"), Val: FromString("v")},
		{Key: FromString("x"), Val: FromBool(true)},
	})
	if !Equal(a, b) {
		t.Error("member order should not affect object equality")
	}
	c := FromKeyVals([]KeyVal{
		{Key: FromString("x"), Val: FromBool(true)},
		{Key: FromString("y"), Val: FromString("w")},
	})
	if Equal(a, c) {
		t.Error("objects with differing values compare equal")
	}
}

// The grammar permits repeated keys, so objects must compare all their
// members, not a key-collapsed view of them.
func TestCompareObjectsDuplicateKeys(t *testing.T) {
	mk := func(vals ...string) *Node {
		kvs := make([]KeyVal, len(vals))
		for i, v := range vals {
			kvs[i] = KeyVal{Key: FromString("k"), Val: FromString(v)}
		}
		return FromKeyVals(kvs)
	}
	if Equal(mk("a", "b"), mk("x", "b")) {
		t.Error("objects differing in a duplicated member compare equal")
	}
	if !Equal(mk("a", "b"), mk("a", "b")) {
		t.Error("identical duplicated members compare unequal")
	}
	// duplicates keep document order relative to each other
	if Equal(mk("a", "b"), mk("b", "a")) {
		t.Error("reordered duplicated members compare equal")
	}
}

func TestCompareArrays(t *testing.T) {
	a := FromSlice([]*Node{FromString("a"), FromString("b")})
	b := FromSlice([]*Node{FromString("a"), FromString("b")})
	if !Equal(a, b) {
		t.Error("identical arrays compare unequal")
	}
	// element order matters in arrays
	c := FromSlice([]*Node{FromString("b"), FromString("a")})
	if Equal(a, c) {
		t.Error("reordered arrays compare equal")
	}
	// shorter sorts first
	d := FromSlice([]*Node{FromString("z")})
	if Compare(d, a) != -1 {
		t.Error("shorter array should sort first")
	}
}
