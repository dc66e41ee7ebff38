package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/idl-bindings/convert"
	"github.com/wippyai/idl-bindings/gojabind"
	"github.com/wippyai/idl-bindings/registry"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to TOML converter config")
		convName    = flag.String("conv", "", "Converter to apply")
		expr        = flag.String("expr", "", "Script expression producing the input value")
		label       = flag.String("label", "", "Context label (defaults to \"Value\")")
		list        = flag.Bool("list", false, "List registered converters and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	if *configFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: idlrun -config <file.toml> -conv <name> -expr <script>")
		fmt.Fprintln(os.Stderr, "       idlrun -config <file.toml> -list")
		fmt.Fprintln(os.Stderr, "       idlrun -config <file.toml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		registry.SetLogger(logger)
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	reg, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(cfg, reg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, reg, *convName, *expr, *label, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *Config, reg *registry.Registry, convName, expr, label string, listOnly bool) error {
	fmt.Printf("Converters: %d registered\n", reg.Len())

	if listOnly {
		for _, name := range reg.Names() {
			fmt.Printf("  %s\n", name)
		}
		return nil
	}

	if convName == "" || expr == "" {
		return fmt.Errorf("both -conv and -expr are required")
	}
	if _, ok := reg.Lookup(convName); !ok {
		return fmt.Errorf("unknown converter %q (use -list)", convName)
	}

	realm := newRealm()
	raw, err := realm.Runtime().RunString(expr)
	if err != nil {
		return fmt.Errorf("evaluate expression: %w", err)
	}

	in := realm.Value(raw)
	fmt.Printf("Input: %s (%s)\n", strings.TrimSpace(expr), in.Kind())

	ctx := convert.Context{Prefix: cfg.Prefix, Label: label, Realm: realm}
	result, convErr := reg.Convert(convName, in, ctx)
	realm.Drain()
	if convErr != nil {
		fmt.Printf("Failure: %v\n", convErr)
		return nil
	}
	fmt.Printf("Result: %#v\n", result)
	return nil
}

// newRealm builds the script realm with the node-style console enabled,
// so test expressions can log while being evaluated.
func newRealm() *gojabind.Realm {
	realm := gojabind.NewRealm(nil)
	req := require.NewRegistry()
	req.Enable(realm.Runtime())
	console.Enable(realm.Runtime())
	return realm
}
