// Command huffarc archives and restores files using the canonical
// Huffman codec in github.com/huffarc/huffarc.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/huffarc/huffarc"

	"rsc.io/getopt"

	"golang.org/x/term"
)

var (
	compress   = flag.Bool("compress", false, "create an archive from the given files")
	decompress = flag.Bool("decompress", false, "extract files from an archive into the current directory")
	info       = flag.Bool("info", false, "print information about an archive without extracting it")
	help       = flag.Bool("help", false, "show usage")
)

func usage() {
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "%s -c archive file1 [file2 ...]   zip \"file1\", \"file2\", ... into \"archive\"\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "%s -d archive                     unzip \"archive\" into the current directory\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "%s -i archive                     print information about \"archive\"\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "%s -h                             help\n", os.Args[0])
}

func doCompress(archivePath string, inputs []string) int {
	var (
		out     io.Writer
		outFile *os.File
	)

	if archivePath == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "huffarc: I'm not writing archive data to a terminal")
			return 13
		}
		out = os.Stdout
	} else {
		if _, err := os.Stat(archivePath); err == nil {
			fmt.Fprintf(os.Stderr, "%s: already exists\n", archivePath)
			return 11
		}
		f, err := os.Create(archivePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: create: %v\n", archivePath, err)
			return 4
		}
		outFile = f
		out = f
	}

	w := bufio.NewWriter(out)
	enc := huffarc.NewEncoder(w)

	code := 0
	for _, path := range inputs {
		in, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			code = 3
			break
		}

		err = enc.AddFile(path, in)
		in.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			code = 1
			break
		}
	}

	if cerr := enc.Close(); cerr != nil && code == 0 {
		fmt.Fprintf(os.Stderr, "%s: %v\n", archivePath, cerr)
		code = 1
	}
	if ferr := w.Flush(); ferr != nil && code == 0 {
		fmt.Fprintf(os.Stderr, "%s: %v\n", archivePath, ferr)
		code = 10
	}

	if outFile != nil {
		outFile.Close()
		if code != 0 {
			os.Remove(archivePath)
		}
	}

	return code
}

func doDecompress(archivePath string) int {
	var in io.Reader

	if archivePath == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(archivePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", archivePath, err)
			return 3
		}
		defer f.Close()
		in = f
	}

	var logger io.Writer
	if *info {
		logger = os.Stdout
	}

	dec := huffarc.NewDecoder(bufio.NewReader(in))
	files, err := dec.DecodeAll(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", archivePath, err)
		return 1
	}

	if *info {
		return 0
	}

	for _, f := range files {
		if err := writeExtractedFile(f); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", f.Name, err)
			return 10
		}
	}

	return 0
}

func writeExtractedFile(f huffarc.File) error {
	if dir := filepath.Dir(f.Name); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.Name, f.Data, 0o644)
}

func do() int {
	args := flag.Args()

	if *help {
		usage()
		return 0
	}

	switch {
	case *compress:
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "huffarc: -c requires an archive name and at least one file")
			return 2
		}
		return doCompress(args[0], args[1:])
	case *decompress, *info:
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "huffarc: -d/-i requires exactly one archive name")
			return 2
		}
		return doDecompress(args[0])
	default:
		usage()
		return 2
	}
}

func main() {
	getopt.Alias("c", "compress")
	getopt.Alias("d", "decompress")
	getopt.Alias("i", "info")
	getopt.Alias("h", "help")

	if err := getopt.CommandLine.Parse(os.Args[1:]); err != nil {
		os.Exit(12)
	}

	os.Exit(do())
}
