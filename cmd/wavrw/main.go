// Command wavrw inspects the chunk structure and metadata of WAV files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	wavrw "github.com/briandorsey/wavrw-sub000"
)

const usageMessage = `usage: wavrw <command> [flags] [paths]

commands:
  view    summarize WAV file structure and metadata
  list    list directories of files, one line of chunk names per file`

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errUsage) {
		fmt.Fprintln(os.Stderr, usageMessage)
		os.Exit(2)
	}

	log.Fatal(err)
}

var errUsage = errors.New("missing or unknown command")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}

	switch args[0] {
	case "view":
		return runView(args[1:], out)
	case "list":
		return runList(args[1:], out)
	default:
		return fmt.Errorf("%q: %w", args[0], errUsage)
	}
}

const widthDefault = 80

func runView(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("view", flag.ContinueOnError)

	format := flagSet.String("format", "summary", "output format: line, summary or detailed")
	detailed := flagSet.Bool("d", false, "alias for: -format detailed")
	width := flagSet.Int("w", widthDefault, "trim output to `width` columns")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *detailed {
		*format = "detailed"
	}

	switch *format {
	case "line", "summary", "detailed":
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		return errors.New("view: at least one path is required")
	}

	// Each path is parsed on its own goroutine, but output is buffered
	// per path and printed in argument order.
	outputs := make([]string, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			text, err := viewPath(path, *format, *width)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			outputs[i] = text

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, text := range outputs {
		fmt.Fprint(out, text)
	}

	return nil
}

func viewPath(path, format string, width int) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	if info.IsDir() {
		return fmt.Sprintf("%s is a directory, skipping. Consider using the 'list' command for directories.\n", path), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var buf strings.Builder
	fmt.Fprintf(&buf, "%s: ", path)

	switch format {
	case "line":
		text, err := viewLine(file)
		if err != nil {
			return "", err
		}

		fmt.Fprintln(&buf, text)
	default:
		text, err := viewTable(file, format == "detailed", width)
		if err != nil {
			return "", err
		}

		fmt.Fprint(&buf, text)
	}

	return buf.String(), nil
}

// viewLine renders one file as a comma separated list of chunk names.
func viewLine(rs io.ReadSeeker) (string, error) {
	w, err := wavrw.New(rs)
	if err != nil {
		return "", err
	}

	var names []string

	for {
		c, err := w.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			names = append(names, "ERROR")
			break
		}

		switch c := c.(type) {
		case *wavrw.SmplChunk:
			names = append(names, fmt.Sprintf("%s[%d]", c.Name(), len(c.Loops)))
		default:
			if c.ID() == wavrw.CIDList {
				names = append(names, fmt.Sprintf("%s[%s]", c.Name(), c.Summary()))
			} else {
				names = append(names, c.Name())
			}
		}
	}

	return strings.Join(names, ", "), nil
}

func viewTable(rs io.ReadSeeker, detailed bool, width int) (string, error) {
	w, err := wavrw.New(rs)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.WriteString("\n")
	buf.WriteString("      offset id              size summary\n")

	for {
		c, err := w.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			fmt.Fprintf(&buf, "%12s %-9s %10s %s\n",
				"???", "ERROR", "", trim(err.Error(), width-29))
			break
		}

		fmt.Fprintf(&buf, "%12s %-9s %10d %s\n",
			offsetString(c.Offset()), c.Name(), c.Size(), trim(c.Summary(), width-29))

		if !detailed {
			continue
		}

		items := c.Items()
		for _, item := range items {
			fmt.Fprintf(&buf, "             |%23s : %s\n", item.Name, item.Value)
		}

		if len(items) > 0 {
			buf.WriteString("             --------------------------------------\n")
		}
	}

	for _, warning := range w.Warnings() {
		fmt.Fprintf(&buf, "WARNING: %s\n", warning)
	}

	return buf.String(), nil
}

func offsetString(offset int64) string {
	if offset < 0 {
		return "???"
	}

	return fmt.Sprintf("%d", offset)
}

// trim flattens text to a single line and truncates it to width columns,
// counting runes rather than bytes.
func trim(text string, width int) string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", "")

	if width < 4 {
		width = 4
	}

	runes := []rune(text)
	if len(runes) <= width-4 {
		return text
	}

	return string(runes[:width-4]) + " ..."
}

func runList(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("list", flag.ContinueOnError)

	ext := flagSet.String("ext", "wav", "filter to these comma separated extensions, case insensitive")
	recurse := flagSet.Bool("r", false, "recurse through subdirectories as well")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	path := flagSet.Arg(0)
	if path == "" {
		path = "."
	}

	exts := make(map[string]bool)
	for _, e := range strings.Split(*ext, ",") {
		exts[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}

	return listDir(path, exts, *recurse, out)
}

func listDir(dir string, exts map[string]bool, recurse bool, out io.Writer) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if recurse {
				fmt.Fprintf(os.Stderr, "directory: %s\n", path)

				if err := listDir(path, exts, recurse, out); err != nil {
					return err
				}
			}
			continue
		}

		e := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if !exts[e] {
			continue
		}

		if err := listFile(path, out); err != nil {
			return err
		}
	}

	return nil
}

func listFile(path string, out io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	text, err := viewLine(file)
	if err != nil {
		fmt.Fprintf(out, "%s: ERROR: %v\n", path, err)
		return nil
	}

	fmt.Fprintf(out, "%s: %s\n", path, text)

	return nil
}
