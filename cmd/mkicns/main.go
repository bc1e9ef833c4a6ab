// mkicns generates a placeholder application icon: an .iconset
// directory of solid-color PNGs compiled into a macOS .icns bundle.
package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/term"

	"github.com/Mavwarf/mkicns/internal/bundle"
	"github.com/Mavwarf/mkicns/internal/config"
	"github.com/Mavwarf/mkicns/internal/generator"
	"github.com/Mavwarf/mkicns/internal/iconset"
	"github.com/Mavwarf/mkicns/internal/imagegen"
	"github.com/Mavwarf/mkicns/internal/runlog"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

type cliOptions struct {
	dir     string
	name    string
	color   string
	strict  bool
	native  bool
	pure    bool
	logRuns bool
}

func main() {
	args := os.Args[1:]
	var opts cliOptions
	configPath := ""

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			configPath = flagValue(args, &i, "--config", "a file path")
		case "--dir", "-d":
			opts.dir = flagValue(args, &i, "--dir", "a directory")
		case "--name", "-n":
			opts.name = flagValue(args, &i, "--name", "a bundle name")
		case "--color":
			opts.color = flagValue(args, &i, "--color", "a hex color")
		case "--strict":
			opts.strict = true
		case "--native":
			opts.native = true
		case "--pure":
			opts.pure = true
		case "--log":
			opts.logRuns = true
		default:
			filtered = append(filtered, args[i])
		}
	}

	command := "generate"
	if len(filtered) > 0 {
		command = filtered[0]
	}

	switch command {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "sizes":
		printSizes()
	case "history":
		historyCmd(filtered[1:], configPath)
	case "generate":
		generate(configPath, opts)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", command)
		fmt.Fprintf(os.Stderr, "Run 'mkicns help' for usage.\n")
		os.Exit(1)
	}
}

// flagValue returns the value following a flag, advancing the index.
func flagValue(args []string, i *int, flag, what string) string {
	if *i+1 >= len(args) {
		fmt.Fprintf(os.Stderr, "Error: %s requires %s\n", flag, what)
		os.Exit(1)
	}
	*i++
	return args[*i]
}

func generate(configPath string, opts cliOptions) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	accent, err := imagegen.ParseHexColor(cfg.Color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Creating icon files in %s...\n", iconset.SourceDir(cfg.IconsDir, cfg.Name))

	genOpts := generator.Options{
		Dir:    cfg.IconsDir,
		Name:   cfg.Name,
		Policy: policyFor(cfg.OnImageError),
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		genOpts.Progress = func(name string, px int) {
			fmt.Printf("  %s (%dpx)\n", name, px)
		}
	}

	rep, err := generator.Run(genOpts, pickImager(accent, opts.pure), pickBundler(cfg.Bundler))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, it := range rep.Items {
		if it.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", it.Name, it.Err)
		}
	}
	fmt.Println(rep.Summary())

	if cfg.Log {
		logRun(cfg, rep)
	}

	if rep.Aborted {
		fmt.Fprintf(os.Stderr, "Error: aborted after first image failure\n")
		os.Exit(1)
	}
	if rep.BundleErr != nil {
		fmt.Fprintf(os.Stderr, "Error: could not create .icns bundle: %v\n", rep.BundleErr)
		os.Exit(1)
	}
	fmt.Printf("Icon bundle created: %s\n", rep.BundlePath)
}

// applyOverrides folds CLI flags into the loaded config.
// Flag priority: CLI > config file > built-in defaults.
func applyOverrides(cfg config.Config, opts cliOptions) config.Config {
	if opts.dir != "" {
		cfg.IconsDir = opts.dir
	}
	if opts.name != "" {
		cfg.Name = opts.name
	}
	if opts.color != "" {
		cfg.Color = opts.color
	}
	if opts.strict {
		cfg.OnImageError = "abort"
	}
	if opts.native {
		cfg.Bundler = "native"
	}
	if opts.logRuns {
		cfg.Log = true
	}
	return cfg
}

func policyFor(onImageError string) generator.Policy {
	if onImageError == "abort" {
		return generator.PolicyAbort
	}
	return generator.PolicyContinue
}

// pickImager returns the Image Events renderer on macOS and the
// in-process renderer elsewhere. --pure forces the in-process one.
func pickImager(accent color.NRGBA, pure bool) generator.Imager {
	if pure || runtime.GOOS != "darwin" {
		return imagegen.Solid{Color: accent}
	}
	return imagegen.ImageEvents{Color: accent}
}

func pickBundler(name string) generator.Bundler {
	if name == "native" {
		return bundle.Native{}
	}
	return bundle.Iconutil{}
}

// logRun records the run in the configured store. Best-effort:
// failures go to stderr and never change the exit status.
func logRun(cfg config.Config, rep generator.Report) {
	store, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "runlog: %v\n", err)
		return
	}
	defer closeStore()
	if err := store.Log(toEntry(cfg, rep, time.Now())); err != nil {
		fmt.Fprintf(os.Stderr, "runlog: %v\n", err)
	}
}

func openStore(cfg config.Config) (runlog.Store, func(), error) {
	if cfg.LogFormat == "sqlite" {
		s, err := runlog.NewSQLiteStore(filepath.Join(config.DataDir(), runlog.DBFileName))
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	}
	s := runlog.NewFileStore(filepath.Join(config.DataDir(), runlog.LogFileName))
	return s, func() {}, nil
}

func toEntry(cfg config.Config, rep generator.Report, now time.Time) runlog.Entry {
	e := runlog.Entry{
		Time:       now,
		Name:       cfg.Name,
		Dir:        cfg.IconsDir,
		BundlePath: rep.BundlePath,
	}
	if rep.BundleErr != nil {
		e.BundleErr = rep.BundleErr.Error()
	}
	for _, it := range rep.Items {
		item := runlog.Item{Name: it.Name, Px: it.Px}
		if it.Err != nil {
			item.Err = it.Err.Error()
		}
		e.Items = append(e.Items, item)
	}
	return e
}

func historyCmd(args []string, configPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	if len(args) > 0 && args[0] == "clear" {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: count must be a positive integer\n")
			os.Exit(1)
		}
		count = n
	}

	entries, err := store.Entries(count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("No runs logged yet. Enable logging with --log or \"log\": true in config.")
		return
	}

	for _, e := range entries {
		result := e.BundlePath
		if e.BundleErr != "" {
			result = "bundle failed: " + e.BundleErr
		} else if result == "" {
			result = "bundle skipped"
		}
		fmt.Printf("%s  %-12s %d/%d  %s\n",
			e.Time.Format("2006-01-02 15:04:05"), e.Name, e.Generated(), len(e.Items), result)
	}
}

func printSizes() {
	for _, e := range iconset.Sizes {
		fmt.Printf("%-22s %4d px\n", e.Name, e.Px)
	}
}

func printVersion() {
	fmt.Printf("mkicns %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("mkicns %s - Generate a placeholder .icns application icon\n", version)
	fmt.Println(`
Usage:
  mkicns [options] [generate]
  mkicns [options] history [count | clear]

Options:
  --dir, -d <path>       Output directory (default: assets/icons)
  --name, -n <name>      Bundle base name (default: app)
  --color <#rrggbb>      Placeholder fill color (default: #06b6d4)
  --config, -c <path>    Path to mkicns-config.json
  --strict               Abort on the first image failure
  --native               Compile the bundle in-process instead of iconutil
  --pure                 Render images in-process instead of Image Events
  --log                  Record this run in the run history

Commands:
  generate               Build the iconset and bundle (default)
  sizes                  List the icon sizes that will be generated
  history [count|clear]  Show or clear logged runs
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Config resolution:
  1. --config <path>               (explicit)
  2. mkicns-config.json next to binary    (portable)
  3. ~/.config/mkicns/mkicns-config.json  (user default)

Examples:
  mkicns                           Generate assets/icons/app.icns
  mkicns -d build/icons -n myapp   Custom directory and bundle name
  mkicns --color "#ff6600"         Orange placeholder
  mkicns --native --pure           No macOS tooling required`)
}
