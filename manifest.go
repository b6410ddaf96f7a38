package main

import (
	"bytes"
	"encoding/json"
	"image"
	_ "image/png"
	"os"
)

// Manifest describes the contents
// of a single spritesheet.
type Manifest struct {
	File     string    `json:"file"`
	Textures []Texture `json:"textures"`
}

// ToBytes encodes the manifest as JSON
// indented with 2 spaces.
func (manifest *Manifest) ToBytes() ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(manifest)

	if err != nil {
		return nil, err
	}

	return bytes.TrimRight(buffer.Bytes(), "\n"), nil
}

// WriteManifest overwrites the file at path
// with the encoded manifest.
func WriteManifest(path string, data []byte) error {
	return os.WriteFile(path, data, 0666)
}

// readSheetSize decodes only the image
// header to get the sheet dimensions.
func readSheetSize(path string) (width, height int, err error) {
	file, err := os.Open(path)

	if err != nil {
		return 0, 0, err
	}

	defer file.Close()

	config, _, err := image.DecodeConfig(file)

	if err != nil {
		return 0, 0, err
	}

	return config.Width, config.Height, nil
}
