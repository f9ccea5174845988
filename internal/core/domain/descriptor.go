package domain

// DirType describes how a theme subdirectory's icons relate to requested sizes.
type DirType uint8

const (
	// DirThreshold matches sizes within a threshold window around Size.
	// It is the default when a directory section declares no Type.
	DirThreshold DirType = iota
	// DirFixed matches exactly one size.
	DirFixed
	// DirScaled matches any size in the [MinSize, MaxSize] range.
	DirScaled
)

// String returns the index.theme spelling of the type.
func (t DirType) String() string {
	switch t {
	case DirFixed:
		return "Fixed"
	case DirScaled:
		return "Scaled"
	default:
		return "Threshold"
	}
}

// ParseDirType maps an index.theme Type value to a DirType. Unrecognized
// values fall back to Threshold.
func ParseDirType(s string) DirType {
	switch s {
	case "Fixed":
		return DirFixed
	case "Scaled":
		return DirScaled
	default:
		return DirThreshold
	}
}

// DirectoryDescriptor is the parsed metadata of one theme subdirectory.
// It is immutable once parsed.
type DirectoryDescriptor struct {
	Name      string
	Size      int
	Type      DirType
	Scale     int
	MinSize   int
	MaxSize   int
	Threshold int
}

// NewDirectoryDescriptor creates a descriptor with the defaults mandated by
// the icon theme format: Type=Threshold, Scale=1, MinSize=MaxSize=Size,
// Threshold=2. Callers override individual fields after construction when
// the section declares them.
func NewDirectoryDescriptor(name string, size int) DirectoryDescriptor {
	return DirectoryDescriptor{
		Name:      name,
		Size:      size,
		Type:      DirThreshold,
		Scale:     1,
		MinSize:   size,
		MaxSize:   size,
		Threshold: 2,
	}
}

// Matches reports whether an icon from this directory is an exact fit for
// the requested size and scale. The scale must match exactly; there is no
// scale tolerance.
func (d DirectoryDescriptor) Matches(size, scale int) bool {
	if d.Scale != scale {
		return false
	}
	switch d.Type {
	case DirFixed:
		return d.Size == size
	case DirScaled:
		return d.MinSize <= size && size <= d.MaxSize
	default:
		return d.Size-d.Threshold <= size && size <= d.Size+d.Threshold
	}
}

// Distance returns how far the requested size is from this directory's
// range, used to pick the closest candidate when nothing matches exactly.
// Unlike Matches it tolerates scale mismatches: all magnitudes are
// multiplied by their scale so requests at different scales compare in the
// same unit.
//
// For Threshold directories the bounds that decide "out of range" come from
// Size±Threshold while the reported magnitude comes from MinSize/MaxSize.
// The windows differ on purpose; resolvers in the wild rely on the exact
// numbers this produces.
func (d DirectoryDescriptor) Distance(size, scale int) int {
	scaled := size * scale
	switch d.Type {
	case DirFixed:
		return abs(d.Size*d.Scale - scaled)
	case DirScaled:
		if scaled < d.MinSize*d.Scale {
			return d.MinSize*d.Scale - scaled
		}
		if scaled > d.MaxSize*d.Scale {
			return scaled - d.MaxSize*d.Scale
		}
		return 0
	default:
		if scaled < (d.Size-d.Threshold)*d.Scale {
			return d.MinSize*d.Scale - scaled
		}
		if scaled > (d.Size+d.Threshold)*d.Scale {
			return scaled - d.MaxSize*d.Scale
		}
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
