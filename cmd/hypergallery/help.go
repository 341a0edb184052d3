// ABOUTME: Help, startup banner, and shutdown output for the hypergallery CLI, styled with lipgloss.
// ABOUTME: Styles degrade to plain text when the writer is not a color terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	urlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Underline(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// printHelp writes usage, flags, config sources and examples to w.
func printHelp(w io.Writer, ver string) {
	fmt.Fprintln(w, titleStyle.Render("hypergallery "+ver)+" — browse isomorphic open hypergraph examples")
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("Usage:"))
	fmt.Fprintln(w, "  hypergallery [flags]                Serve the gallery")
	fmt.Fprintln(w, "  hypergallery -list [name]           Print examples as JSON and exit")
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("Flags:"))
	fmt.Fprintln(w, "  -host <host>          Host to bind (default: localhost)")
	fmt.Fprintln(w, "  -port <port>          Port to listen on (default: 8000)")
	fmt.Fprintln(w, "  -root <dir>           Example directory (default: example_isomorphisms)")
	fmt.Fprintln(w, "  -config <file>        YAML config file")
	fmt.Fprintln(w, "  -list                 Print the scanned examples as JSON and exit")
	fmt.Fprintln(w, "  -version              Print version and exit")
	fmt.Fprintln(w, "  -help                 Show this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("Config:"))
	fmt.Fprintf(w, "  Flags override HYPERGALLERY_HOST, HYPERGALLERY_PORT and HYPERGALLERY_ROOT,\n")
	fmt.Fprintf(w, "  which override %s or $XDG_CONFIG_HOME/hypergallery/config.yaml.\n", localConfigFile)
	fmt.Fprintln(w, "  A .env file in the working directory is loaded first.")
	fmt.Fprintln(w)

	fmt.Fprintln(w, headingStyle.Render("Examples:"))
	fmt.Fprintln(w, "  hypergallery")
	fmt.Fprintln(w, "  hypergallery -port 8080 -root ./examples")
	fmt.Fprintln(w, "  hypergallery -list copy_and")
}

// printBanner announces the listening URL.
func printBanner(w io.Writer, cfg Config) {
	fmt.Fprintf(w, "Serving at %s\n", urlStyle.Render(cfg.URL()))
	if info, err := os.Stat(cfg.Root); err != nil || !info.IsDir() {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("warning: example directory %q not found; the gallery will be empty", cfg.Root)))
	}
	fmt.Fprintln(w, hintStyle.Render("Press Ctrl+C to stop the server"))
}

func printStopped(w io.Writer) {
	fmt.Fprintln(w, "\nServer stopped.")
}
