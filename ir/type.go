package ir

type Type int

const (
	NullType Type = iota
	BoolType
	StringType
	ObjectType
	ArrayType
)

func Types() []Type {
	return []Type{NullType, BoolType, StringType, ObjectType, ArrayType}
}

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		BoolType:   "Bool",
		StringType: "String",
		ObjectType: "Object",
		ArrayType:  "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
