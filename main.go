package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	bolt "go.etcd.io/bbolt"
)

var (
	manifestPath     string
	resourceFilePath string
	batchIndexPath   string
)

func parseFlags(args []string, errOut io.Writer) (*flag.FlagSet, error) {
	flags := flag.NewFlagSet("sheet-manifest", flag.ContinueOnError)
	flags.SetOutput(errOut)

	flags.StringVar(&manifestPath, "json", defaultManifestPath,
		"File to write the JSON spritesheet manifest to.")
	flags.StringVar(&resourceFilePath, "res", "",
		"Optional resource file to also store the manifest in.")
	flags.StringVar(&batchIndexPath, "batch", "",
		"Path to the YAML file listing spritesheets to convert.")

	return flags, flags.Parse(args)
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	handleError(err)
}

// run converts either the sheet named by the positional
// argument or every sheet of the batch index.
func run(args []string, out, errOut io.Writer) error {
	flags, err := parseFlags(args, errOut)

	if err != nil {
		return err
	}

	var sheets []SheetMeta

	if batchIndexPath != "" {
		contents, err := os.ReadFile(batchIndexPath)

		if err != nil {
			return err
		}

		sheets, err = ReadSheetsData(contents, manifestPath)

		if err != nil {
			return fmt.Errorf("read batch index '%s': %w", batchIndexPath, err)
		}
	} else {
		if flags.NArg() < 1 {
			return fmt.Errorf("usage: sheet-manifest [flags] <input>")
		}

		sheets = []SheetMeta{{Input: flags.Arg(0), JSON: manifestPath}}
	}

	// Open the resource file.
	var resourceFile *bolt.DB

	if resourceFilePath != "" {
		resourceFile, err = bolt.Open(resourceFilePath, 0666, nil)

		if err != nil {
			return err
		}

		defer resourceFile.Close()
	}

	for _, sheet := range sheets {
		err = convertSheet(out, errOut, sheet, resourceFile)

		if err != nil {
			return err
		}
	}

	return nil
}

// convertSheet runs the whole conversion for a single
// spritesheet. Both inputs are read before anything
// is written. Bounds warnings go to errOut.
func convertSheet(out, errOut io.Writer, sheet SheetMeta, resourceFile *bolt.DB) error {
	imagePath := sheet.Input + ".png"
	descriptionPath := sheet.Input + ".txt"

	// Read the sheet dimensions.
	width, height, err := readSheetSize(imagePath)

	if err != nil {
		return fmt.Errorf("read image '%s': %w", imagePath, err)
	}

	printAdvisory(out, width, height)

	// Read the packing description.
	contents, err := os.ReadFile(descriptionPath)

	if err != nil {
		return fmt.Errorf("read description '%s': %w", descriptionPath, err)
	}

	textures, err := ParseTextures(string(contents), height, out)

	if err != nil {
		return fmt.Errorf("parse description '%s': %w", descriptionPath, err)
	}

	checkBounds(errOut, textures, width, height)

	// Save everything.
	manifest := &Manifest{
		File:     imagePath,
		Textures: textures,
	}

	data, err := manifest.ToBytes()

	if err != nil {
		return err
	}

	err = WriteManifest(sheet.JSON, data)

	if err != nil {
		return fmt.Errorf("write manifest '%s': %w", sheet.JSON, err)
	}

	if resourceFile == nil {
		return nil
	}

	return StoreManifest(resourceFile, manifest, data)
}

func handleError(err error) {
	if err != nil {
		panic(err)
	}
}
