// Command usfx2tsv converts USFX Bible XML into tab-separated verse
// records for database import.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/usfx2tsv/core/tsv"
	"github.com/FocuswithJustin/usfx2tsv/core/usfx"
	"github.com/FocuswithJustin/usfx2tsv/internal/db"
	"github.com/FocuswithJustin/usfx2tsv/internal/inspect"
	"github.com/FocuswithJustin/usfx2tsv/internal/logging"
	"github.com/FocuswithJustin/usfx2tsv/internal/source"
)

const version = "0.2.0"

// defaultInput is where the original conversion script expected its
// source file; convert falls back to it when no argument is given.
const defaultInput = "./xml/source.xml"

// CLI defines the command-line interface for usfx2tsv.
var CLI struct {
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (text, json)"`

	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert a USFX file to TSV"`
	Load    LoadCmd    `cmd:"" help:"Convert a USFX file and load the verses into SQLite"`
	Inspect InspectCmd `cmd:"" help:"Summarize the structure of a USFX file"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ConvertCmd converts a USFX file to TSV on stdout or a file.
type ConvertCmd struct {
	Input string `arg:"" optional:"" help:"Path to USFX XML file (.xml, .xml.gz, .xml.xz)" type:"path"`
	Out   string `help:"Output file (default: stdout)" type:"path"`
}

func (c *ConvertCmd) Run() error {
	input := c.Input
	if input == "" {
		input = defaultInput
	}

	in, err := source.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	logging.ConversionStart(input)
	start := time.Now()

	n, err := usfx.Convert(in, tsv.NewWriter(out))
	if err != nil {
		logging.ConversionError(input, err, "records_written", n)
		return err
	}

	logging.ConversionComplete(input, n, time.Since(start))
	return nil
}

// LoadCmd converts a USFX file and loads the verses into a SQLite database.
type LoadCmd struct {
	Input string `arg:"" help:"Path to USFX XML file" type:"existingfile"`
	DB    string `required:"" help:"SQLite database path" type:"path"`
}

func (c *LoadCmd) Run() error {
	digest, err := source.DigestFile(c.Input)
	if err != nil {
		return fmt.Errorf("digest input: %w", err)
	}

	in, err := source.Open(c.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	conn, err := db.Open(c.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()

	loader, err := db.NewLoader(conn)
	if err != nil {
		return err
	}

	x := usfx.New(usfx.NewDecoderSource(in))
	imp, err := loader.Load(context.Background(), c.Input, digest, func() (*tsv.VerseRecord, error) {
		rec, err := x.Next()
		if err == io.EOF {
			return nil, nil
		}
		return rec, err
	})
	if err != nil {
		logging.ConversionError(c.Input, err)
		return err
	}

	logging.ImportComplete(c.DB, imp.ID, imp.VerseCount, "source_blake3", imp.SourceBlake3)
	fmt.Printf("loaded %d verses into %s (import %s)\n", imp.VerseCount, c.DB, imp.ID)
	return nil
}

// InspectCmd summarizes the structure of a USFX file.
type InspectCmd struct {
	Input string `arg:"" help:"Path to USFX XML file" type:"existingfile"`
	JSON  bool   `help:"Output as JSON"`
	XPath string `help:"Run an XPath query instead of the summary"`
}

func (c *InspectCmd) Run() error {
	in, err := source.Open(c.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	if c.XPath != "" {
		results, err := inspect.Query(in, c.XPath)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Println(r)
		}
		return nil
	}

	summary, err := inspect.Summarize(in)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	if summary.Language != "" {
		fmt.Printf("language: %s\n", summary.Language)
	}
	fmt.Printf("books: %d, chapters: %d, verses: %d\n",
		len(summary.Books), summary.Chapters, summary.Verses)
	for _, b := range summary.Books {
		fmt.Printf("  %-4s %4d chapters %6d verses\n", b.Code, b.Chapters, b.Verses)
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := db.GetInfo()
	fmt.Printf("usfx2tsv %s (sqlite driver: %s)\n", version, info.DriverType)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("usfx2tsv"),
		kong.Description("Convert USFX Bible XML to tab-separated verse records."),
		kong.UsageOnError(),
	)

	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))

	if err := ctx.Run(); err != nil {
		logging.Error("command failed", "error", err.Error())
		os.Exit(1)
	}
}
