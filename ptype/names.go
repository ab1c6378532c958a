package ptype

import "fmt"

var typeNames = map[PatternType]string{
	TypeGauss:     "Gauss",
	TypeCscSq:     "CscSq",
	TypeSinXX:     "SinXX",
	TypePedestal:  "Pedestal",
	TypeOmni:      "Omni",
	TypeTable:     "PAT",
	TypeRelTable:  "REL",
	TypeCRUISE:    "CRUISE",
	TypeMonopulse: "Monopulse",
	TypeBiLinear:  "BiLinear",
	TypeNSMA:      "NSMA",
	TypeEZNEC:     "EZNEC",
	TypeXFDTD:     "XFDTD",
}

var namesToType map[string]PatternType

func init() {
	namesToType = make(map[string]PatternType, len(typeNames))
	for t, name := range typeNames {
		namesToType[name] = t
	}
}

// TypeName returns t's canonical name, or "Unknown" if t isn't a
// recognized pattern type.
func TypeName(t PatternType) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// TypeFromName parses a canonical pattern type name, the inverse of
// TypeName.
func TypeFromName(name string) (PatternType, error) {
	if t, ok := namesToType[name]; ok {
		return t, nil
	}
	return TypeUnknown, fmt.Errorf("pattern: unrecognized pattern type name %q", name)
}
