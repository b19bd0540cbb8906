// ABOUTME: vsum command line tool for the extraction, parsing and rendering engine
// ABOUTME: Runs the core transforms over local files or fetched pages without the HTTP server

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCMD().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCMD() *cobra.Command {
	var root = &cobra.Command{
		Use:           "vsum",
		Short:         "Extract, parse and render page summaries",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(extractCMD(), parseCMD(), renderCMD())
	return root
}

// readInput reads a file, or stdin when path is "-" or empty
func readInput(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func isRemote(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

func argOrStdin(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func usageError(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}
