package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alacrity-engine/core/math/geometry"
)

const (
	recordFields = 5
	// Coordinates past this are rejected so
	// that y + h can never overflow.
	maxCoordinate = 1 << 30
)

// Texture is a single sprite of the sheet.
// X, W and H are kept exactly as written
// in the description file.
type Texture struct {
	Name string `json:"name"`
	X    string `json:"x"`
	Y    int    `json:"y"`
	W    string `json:"w"`
	H    string `json:"h"`
}

// FlipY converts a top-down y coordinate
// into the bottom-up one.
func FlipY(sheetHeight, y, h int) int {
	return sheetHeight - (y + h)
}

// Bounds returns the texture rectangle in
// bottom-up sheet space.
func (texture Texture) Bounds() (geometry.Rect, error) {
	x, err := parseField(texture.X)

	if err != nil {
		return geometry.Rect{}, err
	}

	w, err := parseField(texture.W)

	if err != nil {
		return geometry.Rect{}, err
	}

	h, err := parseField(texture.H)

	if err != nil {
		return geometry.Rect{}, err
	}

	return geometry.R(float64(x), float64(texture.Y),
		float64(x+w), float64(texture.Y+h)), nil
}

// ParseTextures reads the packing description and
// flips every record against the sheet height.
// Lines with less than 5 fields are skipped.
func ParseTextures(contents string, sheetHeight int, out io.Writer) ([]Texture, error) {
	textures := []Texture{}

	for i, line := range strings.Split(contents, "\n") {
		fields := strings.Split(line, ",")

		if len(fields) < recordFields {
			continue
		}

		name, x, w, h := fields[0], fields[1], fields[3], fields[4]

		y, err := parseField(fields[2])

		if err != nil {
			return nil, fmt.Errorf("line %d: y: %w", i+1, err)
		}

		height, err := parseField(h)

		if err != nil {
			return nil, fmt.Errorf("line %d: h: %w", i+1, err)
		}

		texture := Texture{
			Name: name,
			X:    x,
			Y:    FlipY(sheetHeight, y, height),
			W:    w,
			H:    h,
		}

		fmt.Fprintf(out, "%s : %d\n", texture.Name, texture.Y)
		textures = append(textures, texture)
	}

	return textures, nil
}

// checkBounds warns about textures that stick
// out of the sheet. Textures with non-numeric
// fields are not checked.
func checkBounds(out io.Writer, textures []Texture, width, height int) {
	sheet := geometry.R(0, 0, float64(width), float64(height))

	for _, texture := range textures {
		bounds, err := texture.Bounds()

		if err != nil {
			continue
		}

		if bounds.Min.X < sheet.Min.X || bounds.Min.Y < sheet.Min.Y ||
			bounds.Max.X > sheet.Max.X || bounds.Max.Y > sheet.Max.Y {
			fmt.Fprintf(out, "texture '%s' is out of the sheet bounds: %v\n",
				texture.Name, bounds)
		}
	}
}

func parseField(field string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(field))

	if err != nil {
		return 0, err
	}

	if value > maxCoordinate || value < -maxCoordinate {
		return 0, fmt.Errorf("value %d is out of range", value)
	}

	return value, nil
}
