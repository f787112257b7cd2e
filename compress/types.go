package compress

// Type identifies a compression algorithm for key-file payloads.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone represents no compression.
	TypeZstd Type = 0x2 // TypeZstd represents Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 represents S2 compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 represents LZ4 compression.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseType converts a textual algorithm name ("none", "zstd", "s2", "lz4")
// into a Type. Unknown names report false.
func ParseType(name string) (Type, bool) {
	switch name {
	case "none", "":
		return TypeNone, true
	case "zstd":
		return TypeZstd, true
	case "s2":
		return TypeS2, true
	case "lz4":
		return TypeLZ4, true
	default:
		return 0, false
	}
}
