// cgminfo prints a summary of one or more Computer Graphics Metafiles:
// the metafile descriptor, each picture and the text it contains. With
// --preview it also renders an outline image of every file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"

	"github.com/tsawler/cgminfo"
	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/format"
	"github.com/tsawler/cgminfo/internal/filters"
	"github.com/tsawler/cgminfo/internal/preview"
	"github.com/tsawler/cgminfo/internal/report"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	encoding    string
	format      string
	previewDir  string
	previewSize int
	logLevel    string
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("cgminfo", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.encoding, "encoding", "e", "", "force the encoding: binary or text (default: from the file extension)")
	flagSet.StringVarP(&opts.format, "format", "f", "text", "report format: text, yaml, html or cbor")
	flagSet.StringVarP(&opts.previewDir, "preview", "p", "", "write a PNG outline preview of each file into this directory")
	flagSet.IntVar(&opts.previewSize, "preview-size", 512, "preview width and height in pixels")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	showVersion := flagSet.Bool("version", false, "print the version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet, stderr)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet, stderr)
		return nil
	}
	if *showVersion {
		fmt.Fprintf(stdout, "cgminfo %s\n", version)
		return nil
	}

	files := flagSet.Args()
	if len(files) == 0 {
		return fmt.Errorf("no input files (see --help)")
	}

	enc := format.Unknown
	if opts.encoding != "" {
		var err error
		if enc, err = format.ParseEncoding(opts.encoding); err != nil {
			return err
		}
	}
	reportFormat, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.previewDir != "" {
		if opts.previewSize <= 0 {
			return fmt.Errorf("invalid --preview-size %d", opts.previewSize)
		}
		if err := checkPreviewNames(files); err != nil {
			return err
		}
	}
	logger, err := newLogger(opts.logLevel, stderr)
	if err != nil {
		return err
	}

	var result *multierror.Error
	var reports []*report.Report
	for _, name := range files {
		rep, err := inspect(name, enc, opts, logger)
		if rep != nil {
			reports = append(reports, rep)
		}
		if err != nil {
			logger.Debug("inspect failed", "file", name, "error", err)
			result = multierror.Append(result, err)
		}
	}

	if err := report.Write(stdout, reportFormat, reports); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// inspect decodes one file into a report and optionally a preview. The
// report holds whatever was decoded before an error.
func inspect(name string, enc format.Encoding, opts options, logger *slog.Logger) (*report.Report, error) {
	m := cgminfo.Open(name).Logger(logger)
	if enc != format.Unknown {
		m = m.Encoding(enc)
	}

	cmds, err := m.Commands()
	if len(cmds) == 0 && err != nil {
		return nil, err
	}

	rep := report.New(filepath.Base(name))
	geometry := preview.NewContext()
	for _, cmd := range cmds {
		cmd.Accept(report.PrintVisitor{}, rep)
		if opts.previewDir != "" {
			cmd.Accept(preview.GeometryVisitor{}, geometry)
		}
	}
	logger.Debug("decoded metafile", "file", name, "commands", len(cmds), "unsupported", countUnsupported(cmds))

	if opts.previewDir != "" {
		out := filepath.Join(opts.previewDir, previewName(name))
		if perr := writePreview(out, geometry, opts.previewSize); perr != nil {
			err = combineErrors(err, fmt.Errorf("%s: %w", name, perr))
		} else {
			logger.Info("wrote preview", "file", out)
		}
	}
	return rep, err
}

func countUnsupported(cmds []commands.Command) int {
	n := 0
	for _, cmd := range cmds {
		if _, ok := cmd.(*commands.UnsupportedCommand); ok {
			n++
		}
	}
	return n
}

// previewName maps drawing.cgm and drawing.cgm.gz to drawing.cgm.png. The
// source extension is kept so that a.cgm and a.cgmt get separate previews.
func previewName(name string) string {
	_, stripped := filters.Detect(name)
	return filepath.Base(stripped) + ".png"
}

// checkPreviewNames fails when two inputs would write the same preview
func checkPreviewNames(files []string) error {
	seen := make(map[string]string, len(files))
	for _, name := range files {
		out := previewName(name)
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("%s and %s would both write preview %s", prev, name, out)
		}
		seen[out] = name
	}
	return nil
}

func writePreview(path string, c *preview.Context, size int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = combineErrors(err, f.Close())
	}()
	return preview.WritePNG(f, c, size, size)
}

func combineErrors(errs ...error) (err error) {
	for _, e := range errs {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}

// newLogger builds the stderr logger. CGMINFO_DEBUG forces debug level.
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	if os.Getenv("CGMINFO_DEBUG") != "" {
		l = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func printHelp(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `cgminfo: summarize Computer Graphics Metafiles (ISO/IEC 8632).

Binary metafiles (.cgm) and clear text metafiles (.cgmt, .txt) are
recognized by extension. Use --encoding for anything else.

Usage:
  cgminfo [flags] file...

Examples:
  # Summarize a drawing
  cgminfo drawing.cgm

  # Clear text input with an unusual extension, as YAML
  cgminfo --encoding text --format yaml drawing.dat

  # Write previews next to an HTML report
  cgminfo --format html --preview ./previews *.cgm > report.html

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
