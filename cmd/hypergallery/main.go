// ABOUTME: CLI entrypoint for hypergallery, the local browser for isomorphic hypergraph examples.
// ABOUTME: Resolves config, then either lists examples or serves the gallery until interrupted.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2389-research/hypergallery/gallery"
	"github.com/2389-research/hypergallery/web"
	"golang.org/x/sync/errgroup"
)

var version = "dev"

// shutdownTimeout bounds how long in-flight requests may run after an interrupt.
const shutdownTimeout = 5 * time.Second

// options holds everything parsed from the command line.
type options struct {
	host        string
	port        int
	root        string
	configPath  string
	list        bool
	showVersion bool
	exampleName string

	// set records which flags were given explicitly, so only those
	// override values from the config file and environment.
	set map[string]bool
}

func main() {
	if _, err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("hypergallery %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(opts))
}

// parseFlags parses command-line flags into options.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	opts := options{set: map[string]bool{}}
	defaults := defaultConfig()

	fs := flag.NewFlagSet("hypergallery", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.host, "host", defaults.Host, "Host to bind")
	fs.IntVar(&opts.port, "port", defaults.Port, "Port to listen on")
	fs.StringVar(&opts.root, "root", defaults.Root, "Directory containing one subdirectory per example")
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.BoolVar(&opts.list, "list", false, "Print the scanned examples as JSON and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	fs.Usage = func() {
		printHelp(stderr, version)
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	if fs.NArg() > 0 {
		opts.exampleName = fs.Arg(0)
	}
	return opts, nil
}

// run dispatches to list or server mode. Returns the process exit code.
func run(opts options) int {
	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if opts.list {
		return listExamples(os.Stdout, os.Stderr, cfg.Root, opts.exampleName)
	}
	return runServer(cfg)
}

// listExamples prints the example collection, or a single example when name
// is set, as indented JSON.
func listExamples(stdout, stderr io.Writer, root, name string) int {
	scanner := gallery.NewScanner(root)

	var v any
	if name != "" {
		ex, err := scanner.Lookup(name)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		v = ex
	} else {
		examples, err := scanner.Scan()
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		v = examples
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runServer serves the gallery until SIGINT or SIGTERM, then shuts down and
// releases the listening socket.
func runServer(cfg Config) int {
	srv, err := web.NewServer(web.ServerConfig{
		Addr: cfg.Addr(),
		Root: cfg.Root,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	httpServer := srv.HTTPServer()
	ln, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printBanner(os.Stdout, cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	printStopped(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
