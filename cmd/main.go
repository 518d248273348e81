package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dargueta/bootpack"
	"github.com/dargueta/bootpack/utilities/compression"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		logrus.Errorf("fatal error: %s", err.Error())
		os.Exit(exitStatus(err))
	}
}

// exitStatus maps an error returned by the app to a process exit status.
// Images too large for the target memory abort with 2, everything else is 1.
func exitStatus(err error) int {
	if errors.Is(err, bootpack.ErrSourceTooLarge) {
		return 2
	}
	return 1
}

type tool struct {
	log *logrus.Logger
}

func newApp() *cli.App {
	t := &tool{log: logrus.New()}

	return &cli.App{
		Name:  "bootpack",
		Usage: "Encode boot ROM data images",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log what's being done",
			},
		},
		Before: t.setUp,
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Encode an image with PB12",
				Action:    t.encodeImage,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "gzip",
						Usage: "wrap the encoded stream in gzip, for archiving",
					},
				},
			},
			{
				Name:      "explain",
				Usage:     "Show how each byte of an image would be encoded",
				Action:    t.explainImage,
				ArgsUsage: "INPUT_FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "csv",
						Usage: "write every encoding event to `FILE` as CSV",
					},
					&cli.IntFlag{
						Name:  "map-width",
						Value: 64,
						Usage: "bytes per line of the literal map",
					},
				},
			},
			{
				Name:      "lre",
				Usage:     "Run-length encode a file with LRE",
				Action:    t.runLengthEncode,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
			},
		},
	}
}

func (t *tool) setUp(ctx *cli.Context) error {
	t.log.SetOutput(ctx.App.ErrWriter)
	if ctx.Bool("verbose") {
		t.log.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func expectArgs(ctx *cli.Context, count int) error {
	if ctx.Args().Len() != count {
		return bootpack.ErrUsage.WithMessage(
			fmt.Sprintf(
				"%s: expected %s, got %d arguments",
				ctx.Command.Name,
				ctx.Command.ArgsUsage,
				ctx.Args().Len()))
	}
	return nil
}

func openInput(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, bootpack.ErrIOFailed.WithMessage("failed to open input").Wrap(err)
	}
	return file, nil
}

// createOutput creates the file at `path`, truncating any existing one.
func createOutput(path string) (*os.File, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, bootpack.ErrIOFailed.WithMessage("failed to open output").Wrap(err)
	}
	return file, nil
}

// encodeFile runs `encode` over the file at `inputPath` and writes the result to
// a new file at `outputPath`.
func encodeFile(
	inputPath, outputPath string, encode func(io.Reader, io.Writer) (int64, error),
) (int64, error) {
	input, err := openInput(inputPath)
	if err != nil {
		return 0, err
	}
	defer input.Close()

	output, err := createOutput(outputPath)
	if err != nil {
		return 0, err
	}
	defer output.Close()

	n, err := encode(input, output)
	if err != nil {
		return n, err
	}

	err = output.Close()
	if err != nil {
		return n, bootpack.ErrIOFailed.Wrap(err)
	}
	return n, nil
}

func (t *tool) encodeImage(ctx *cli.Context) error {
	err := expectArgs(ctx, 2)
	if err != nil {
		return err
	}

	inputPath := ctx.Args().Get(0)
	outputPath := ctx.Args().Get(1)
	encode := compression.CompressImage
	if ctx.Bool("gzip") {
		encode = compression.CompressImageGzip
	}

	n, err := encodeFile(inputPath, outputPath, encode)
	if err != nil {
		return err
	}

	t.log.WithFields(logrus.Fields{
		"input":  inputPath,
		"output": outputPath,
		"size":   n,
		"gzip":   ctx.Bool("gzip"),
	}).Debug("encoded image")
	return nil
}

func (t *tool) runLengthEncode(ctx *cli.Context) error {
	err := expectArgs(ctx, 2)
	if err != nil {
		return err
	}

	inputPath := ctx.Args().Get(0)
	outputPath := ctx.Args().Get(1)
	n, err := encodeFile(inputPath, outputPath, compression.CompressLRE)
	if err != nil {
		return err
	}

	t.log.WithFields(logrus.Fields{
		"input":  inputPath,
		"output": outputPath,
		"size":   n,
	}).Debug("run-length encoded file")
	return nil
}

func (t *tool) explainImage(ctx *cli.Context) error {
	err := expectArgs(ctx, 1)
	if err != nil {
		return err
	}

	input, err := openInput(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	defer input.Close()

	source, err := compression.ReadSourceBuffer(input)
	if err != nil {
		return err
	}

	analysis := compression.Analyze(source)
	t.log.WithFields(logrus.Fields{
		"input":  ctx.Args().Get(0),
		"events": len(analysis.Events),
		"digest": fmt.Sprintf("%016x", analysis.Report.SourceDigest),
	}).Debug("analyzed image")

	err = printReport(ctx.App.Writer, analysis.Report)
	if err != nil {
		return err
	}

	if analysis.LiteralMap.Len() > 0 {
		fmt.Fprintln(ctx.App.Writer, "Literal map:")
		err = analysis.LiteralMap.Render(ctx.App.Writer, ctx.Int("map-width"))
		if err != nil {
			return err
		}
	}

	csvPath := ctx.String("csv")
	if csvPath == "" {
		return nil
	}

	csvFile, err := createOutput(csvPath)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	err = compression.WriteEventsCSV(analysis.Events, csvFile)
	if err != nil {
		return err
	}
	t.log.WithField("path", csvPath).Debug("wrote event trace")
	return csvFile.Close()
}

func printReport(output io.Writer, report compression.Report) error {
	_, err := fmt.Fprintf(
		output,
		"Original size:  %6d\n"+
			"Trimmed size:   %6d\n"+
			"Packed size:    %6d (%.1f%%)\n"+
			"Control bytes:  %6d\n"+
			"Literals:       %6d (%d demoted)\n"+
			"Repeats:        %6d prev0, %d prev1\n"+
			"Predictions:    %6d %d %d %d\n"+
			"Padding bytes:  %6d\n"+
			"Digest:         %016x\n",
		report.SourceSize,
		report.TrimmedSize,
		report.OutputSize, 100*report.Ratio(),
		report.ControlBytes,
		report.Literals, report.Demoted,
		report.RepeatsPrev0, report.RepeatsPrev1,
		report.Predictions[0], report.Predictions[1], report.Predictions[2], report.Predictions[3],
		report.PaddingBytes,
		report.SourceDigest,
	)
	return err
}
