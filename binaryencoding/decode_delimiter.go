package binaryencoding

import (
	"github.com/tsawler/cgminfo/commands"
)

// Delimiter elements (ISO/IEC 8632-3 8.2)

func readBeginMetafile(r *Reader) (commands.Command, error) {
	name, err := r.optionalString()
	if err != nil {
		return nil, err
	}
	return &commands.BeginMetafile{Name: name}, nil
}

func readBeginPicture(r *Reader) (commands.Command, error) {
	name, err := r.optionalString()
	if err != nil {
		return nil, err
	}
	return &commands.BeginPicture{Name: name}, nil
}

// optionalString reads a string parameter that writers may omit entirely
func (r *Reader) optionalString() (string, error) {
	if !r.hasMoreData() {
		return "", nil
	}
	return r.readString()
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

// tileDirection converts the direction enumeration (0, 1, 2, 3) to degrees
func tileDirection(v int) int {
	return v * 90
}

func readBeginTileArray(r *Reader) (commands.Command, error) {
	position, err := r.readPoint()
	if err != nil {
		return nil, err
	}
	cellPath, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	lineProgression, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	counts, err := r.readIntegers(4)
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
		CellPathDirection:        tileDirection(cellPath),
		LineProgressionDirection: tileDirection(lineProgression),
		PathDirectionTileCount:   counts[0],
		LineDirectionTileCount:   counts[1],
		PathDirectionCellCount:   counts[2],
		LineDirectionCellCount:   counts[3],
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
	inheritance, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	return &commands.BeginApplicationStructure{
		Identifier:  id,
		Type:        typ,
		Inheritance: commands.InheritanceFlag(inheritance),
	}, nil
}

// empty returns a decoder for elements without parameters
func empty(build func() commands.Command) decodeFunc {
	return func(*Reader) (commands.Command, error) {
		return build(), nil
	}
}
