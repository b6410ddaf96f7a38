package main

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

const defaultManifestPath = "json.spritesheet"

// SheetMeta is spritesheet metadata
// read from the YAML batch file.
type SheetMeta struct {
	Input string `yaml:"input"`
	JSON  string `yaml:"json"`
}

// ReadSheetsData parses the batch index and fills in
// the default output path. Two sheets may not share
// the same output file.
func ReadSheetsData(contents []byte, defaultJSON string) ([]SheetMeta, error) {
	var sheets []SheetMeta
	err := yaml.Unmarshal(contents, &sheets)

	if err != nil {
		return nil, err
	}

	outputs := map[string]string{}

	for i := range sheets {
		if sheets[i].Input == "" {
			return nil, fmt.Errorf(
				"sheet #%d has no input base name", i)
		}

		if sheets[i].JSON == "" {
			sheets[i].JSON = defaultJSON
		}

		if input, ok := outputs[sheets[i].JSON]; ok {
			return nil, fmt.Errorf(
				"sheets '%s' and '%s' are both written to '%s'",
				input, sheets[i].Input, sheets[i].JSON)
		}

		outputs[sheets[i].JSON] = sheets[i].Input
	}

	return sheets, nil
}
