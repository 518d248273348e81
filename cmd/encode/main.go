package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dargueta/bootpack"
	"github.com/dargueta/bootpack/utilities/compression"
)

func main() {
	os.Exit(run(os.Args, os.Stderr))
}

// run encodes the file named by args[1] into args[2] and returns the process
// exit status. Extra arguments are ignored.
func run(args []string, stderr io.Writer) int {
	if len(args) < 3 {
		fmt.Fprintf(
			stderr,
			"Encode a boot image using PB12.\nUsage: %s input-file output-file\n",
			args[0])
		return 1
	}

	sourceFilePath := args[1]
	outputFilePath := args[2]

	sourceFile, errSrc := os.Open(sourceFilePath)
	if errSrc != nil {
		fmt.Fprintf(
			stderr, "Failed to open file for reading: `%v`: %s\n", sourceFilePath, errSrc)
		return 1
	}
	defer sourceFile.Close()

	outFile, errOut := os.Create(outputFilePath)
	if errOut != nil {
		fmt.Fprintf(
			stderr, "Failed to open file for writing: `%v`: %s\n", outputFilePath, errOut)
		return 1
	}
	defer outFile.Close()

	_, err := compression.CompressImage(sourceFile, outFile)
	if err != nil {
		if errors.Is(err, bootpack.ErrSourceTooLarge) {
			// Not a recoverable condition: the image can't fit in the target memory.
			fmt.Fprintf(stderr, "Aborting: `%v`: %s\n", sourceFilePath, err)
			return 2
		}
		fmt.Fprintf(stderr, "Error encoding file: %s\n", err)
		return 1
	}

	err = outFile.Close()
	if err != nil {
		fmt.Fprintf(stderr, "Error writing file: `%v`: %s\n", outputFilePath, err)
		return 1
	}
	return 0
}
