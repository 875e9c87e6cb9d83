package textencoding

import "github.com/tsawler/cgminfo/commands"

func readBeginMetafile(r *Reader) (commands.Command, error) {
	// the name is optional in practice
	var name string
	if r.hasMoreData(1) {
		name, _ = r.readString()
	}
	return &commands.BeginMetafile{Name: name}, nil
}

func readBeginPicture(r *Reader) (commands.Command, error) {
	var name string
	if r.hasMoreData(1) {
		name, _ = r.readString()
	}
	return &commands.BeginPicture{Name: name}, nil
}

func readBeginSegment(r *Reader) (commands.Command, error) {
	id, err := r.readName()
	if err != nil {
		return nil, err
	}
	return &commands.BeginSegment{Identifier: id}, nil
}

func readBeginProtectionRegion(r *Reader) (commands.Command, error) {
	index, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	return &commands.BeginProtectionRegion{RegionIndex: index}, nil
}

// readBeginTileArray reads the cell path and line progression directions
// as angles in degrees
func readBeginTileArray(r *Reader) (commands.Command, error) {
	position, err := r.readPoint()
	if err != nil {
		return nil, err
	}
	ints, err := r.readIntegers(6)
	if err != nil {
		return nil, err
	}
	cellSizePath, err := r.readReal()
	if err != nil {
		return nil, err
	}
	cellSizeLine, err := r.readReal()
	if err != nil {
		return nil, err
	}
	image, err := r.readIntegers(4)
	if err != nil {
		return nil, err
	}
	return &commands.BeginTileArray{
		Position:                 position,
		CellPathDirection:        ints[0],
		LineProgressionDirection: ints[1],
		PathDirectionTileCount:   ints[2],
		LineDirectionTileCount:   ints[3],
		PathDirectionCellCount:   ints[4],
		LineDirectionCellCount:   ints[5],
		CellSizePath:             cellSizePath,
		CellSizeLine:             cellSizeLine,
		ImageOffsetPath:          image[0],
		ImageOffsetLine:          image[1],
		ImageCellCountPath:       image[2],
		ImageCellCountLine:       image[3],
	}, nil
}

func readBeginApplicationStructure(r *Reader) (commands.Command, error) {
	id, err := r.readString()
	if err != nil {
		return nil, err
	}
	typ, err := r.readString()
	if err != nil {
		return nil, err
	}
	inheritance, err := readEnumValue(r, inheritanceKeywords, commands.InheritStateList)
	if err != nil {
		return nil, err
	}
	return &commands.BeginApplicationStructure{Identifier: id, Type: typ, Inheritance: inheritance}, nil
}

// empty returns a decoder for elements without parameters
func empty(c func() commands.Command) decodeFunc {
	return func(*Reader) (commands.Command, error) {
		return c(), nil
	}
}
