package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	huffman "github.com/chronos-tachyon/canonhuff"
)

var log = logging.MustGetLogger("canonhuff")

const progName = "canonhuff"
const usageMessageRaw = `
Usage: canonhuff [OPTIONS]

Reads one line of text from standard input, builds its Huffman code, and
prints the standard code, the canonical code, and the text encoded with the
canonical code.

Options:
  --text TEXT, -t TEXT
	Use TEXT instead of reading a line from standard input.
  --packed, -p
	Also print the encoded text packed into bytes, as hex.
  --debug, -d
	Log the intermediate steps to standard error.
`

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:6s} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	huffman.SetLogBackend(leveled)
	leveledLogBackend = leveled
}

// options holds the parsed command line.
type options struct {
	text    string
	hasText bool
	packed  bool
}

// readLine returns the first line of r without its line terminator.
func readLine(r io.Reader) (string, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// run is everything main does apart from process setup and exit codes.
func run(opts options, in io.Reader, out io.Writer) error {
	text := opts.text
	if !opts.hasText {
		var err error
		text, err = readLine(in)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	result, err := huffman.Compress(text)
	if errors.Is(err, huffman.ErrEmptyInput) {
		return errors.New("no text to encode: input is empty")
	}
	if err != nil {
		return err
	}
	log.Debugf("%d symbols, %d distinct", result.Frequencies.Total(), len(result.Frequencies))

	bw := bufio.NewWriter(out)
	bw.WriteString("Standard Huffman codes:\n")
	writeTable(bw, result.Standard)
	bw.WriteString("\nCanonical Huffman codes:\n")
	writeTable(bw, result.Canonical)
	fmt.Fprintf(bw, "\nText encoded with the canonical code (%d bits):\n%s\n", len(result.Encoded), result.Encoded)

	if opts.packed {
		packed, err := huffman.Pack(result.Encoded)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "\nPacked (%d bytes):\n%s\n", len(packed), hex.EncodeToString(packed))
	}
	return bw.Flush()
}

func writeTable(w io.Writer, codes huffman.CodeTable) {
	for _, symbol := range codes.Symbols() {
		fmt.Fprintf(w, "%s: %s\n", symbol, codes[symbol])
	}
}

func main() {
	startLogging()

	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var opts options
	var debugLogging bool
	ourFlags.StringVar(&opts.text, "text", "", "")
	ourFlags.StringVar(&opts.text, "t", "", "")
	ourFlags.BoolVar(&opts.packed, "packed", false, "")
	ourFlags.BoolVar(&opts.packed, "p", false, "")
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}
	if ourFlags.NArg() != 0 {
		usageErrorf("unexpected argument %q", ourFlags.Arg(0))
	}

	ourFlags.Visit(func(f *flag.Flag) {
		if f.Name == "text" || f.Name == "t" {
			opts.hasText = true
		}
	})

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		exitError(err)
	}
}
