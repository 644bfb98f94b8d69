// Command vecpath measures and samples the paths of a path document.
//
// Usage:
//
//	vecpath length [flags] <document>
//	vecpath at [flags] <document>
//	vecpath subpaths [flags] <document>
//	vecpath sample [flags] <document>
//	vecpath version
//
// Documents are JSON or YAML, chosen by file extension. Use "-" to read JSON
// from standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"runtime/debug"

	"honnef.co/go/vecpath"
	"honnef.co/go/vecpath/internal/config"
	"honnef.co/go/vecpath/internal/document"
	"honnef.co/go/vecpath/internal/export"
	applog "honnef.co/go/vecpath/internal/log"
)

var version = "devel"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  vecpath length [-config file] <document>     Print the length of every path")
	fmt.Fprintln(w, "  vecpath at [-t f | -l len] <document>         Print the point at a fraction or length of every path")
	fmt.Fprintln(w, "  vecpath subpaths [-config file] <document>   Print every subpath as SVG path data")
	fmt.Fprintln(w, "  vecpath sample [flags] <document>             Sample paths into polygons and export them")
	fmt.Fprintln(w, "  vecpath version                               Show version")
}

func main() {
	code := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	applog.Close()
	os.Exit(code)
}

// errUsage marks errors caused by bad invocations.
var errUsage = errors.New("usage error")

type cli struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	cfg            config.Config
	log            *slog.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}

	var err error
	switch cmd := args[0]; cmd {
	case "version", "-v", "--version":
		fmt.Fprintln(stdout, "vecpath", buildVersion())
		return exitOK
	case "help", "-h", "--help":
		usage(stdout)
		return exitOK
	case "length":
		err = c.length(args[1:])
	case "at":
		err = c.at(args[1:])
	case "subpaths":
		err = c.subpaths(args[1:])
	case "sample":
		err = c.sample(args[1:])
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		usage(stderr)
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	default:
		if c.log != nil {
			c.log.Error("command failed", slog.Any("err", err))
		}
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

// flags returns a flag set for cmd with the common -config flag.
func (c *cli) flags(cmd string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	cfgPath := fs.String("config", "", "configuration `file` (.yaml, .yml or .toml)")
	return fs, cfgPath
}

// setup parses args, loads the configuration and initializes logging. It
// returns the document argument.
func (c *cli) setup(fs *flag.FlagSet, cfgPath *string, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return "", err
		}
		return "", fmt.Errorf("%w: %s", errUsage, err)
	}
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%w: %s takes exactly one document", errUsage, fs.Name())
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return "", err
	}
	c.cfg = cfg

	lopts := cfg.LogOptions()
	lopts.Output = c.stderr
	applog.Init(lopts)
	c.log = applog.WithOperation(applog.WithComponent("cli"), fs.Name())
	vecpath.SetLogger(applog.WithComponent("vecpath"))
	return fs.Arg(0), nil
}

func (c *cli) load(name string) ([]*vecpath.Path, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(c.stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	paths, err := document.Decode(data, document.FormatFor(name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	c.log.Debug("loaded document", slog.String("file", name), slog.Int("paths", len(paths)))
	return paths, nil
}

func (c *cli) length(args []string) error {
	fs, cfgPath := c.flags("length")
	name, err := c.setup(fs, cfgPath, args)
	if err != nil {
		return err
	}
	paths, err := c.load(name)
	if err != nil {
		return err
	}
	for i, p := range paths {
		fmt.Fprintf(c.stdout, "path %d: length %g, %d subpaths\n", i, p.Length(), len(p.Subpaths()))
	}
	return nil
}

func (c *cli) at(args []string) error {
	fs, cfgPath := c.flags("at")
	t := fs.Float64("t", math.NaN(), "position as a `fraction` of the path length")
	l := fs.Float64("l", math.NaN(), "position as a `length` along the path")
	name, err := c.setup(fs, cfgPath, args)
	if err != nil {
		return err
	}
	if math.IsNaN(*t) == math.IsNaN(*l) {
		return fmt.Errorf("%w: at needs exactly one of -t and -l", errUsage)
	}
	paths, err := c.load(name)
	if err != nil {
		return err
	}
	for i, p := range paths {
		var v vecpath.Vector
		if !math.IsNaN(*t) {
			v = p.VectorAt(*t)
		} else {
			v = p.VectorAtLength(*l)
		}
		fmt.Fprintf(c.stdout, "path %d: %s\n", i, v)
	}
	return nil
}

func (c *cli) subpaths(args []string) error {
	fs, cfgPath := c.flags("subpaths")
	name, err := c.setup(fs, cfgPath, args)
	if err != nil {
		return err
	}
	paths, err := c.load(name)
	if err != nil {
		return err
	}
	opts := vecpath.SVGOptions{MaxPrecision: c.cfg.Output.MaxPrecision}
	for i, p := range paths {
		for j, sub := range p.Subpaths() {
			fmt.Fprintf(c.stdout, "path %d.%d: %s (length %g)\n", i, j, sub.SVG(opts), sub.Length())
		}
	}
	return nil
}

func (c *cli) sample(args []string) error {
	fs, cfgPath := c.flags("sample")
	spacing := fs.Float64("spacing", 0, "distance between points (overrides sampling.spacing)")
	format := fs.String("format", "", "output `format`: svg, pdf, png or json (overrides output.format)")
	out := fs.String("o", "", "output `file` (default standard output)")
	name, err := c.setup(fs, cfgPath, args)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "spacing":
			c.cfg.Sampling.Spacing = *spacing
		case "format":
			c.cfg.Output.Format = *format
		}
	})
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	paths, err := c.load(name)
	if err != nil {
		return err
	}
	var polys []*vecpath.Polygon
	for _, p := range paths {
		polys = append(polys, p.ToPolygons(vecpath.PolygonOptions{Spacing: c.cfg.Sampling.Spacing})...)
	}
	c.log.Info("sampled",
		slog.Int("paths", len(paths)),
		slog.Int("polygons", len(polys)),
		slog.Float64("spacing", c.cfg.Sampling.Spacing))

	eopts := export.Options{
		MaxPrecision: c.cfg.Output.MaxPrecision,
		Margin:       c.cfg.Output.Margin,
		Scale:        c.cfg.Output.Scale,
	}
	if *out == "" {
		return export.Write(c.stdout, c.cfg.Output.Format, polys, eopts)
	}
	return writeFile(*out, func(w io.Writer) error {
		return export.Write(w, c.cfg.Output.Format, polys, eopts)
	})
}

// writeFile creates name and fills it with write. The file is removed if
// writing or closing it fails.
func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
