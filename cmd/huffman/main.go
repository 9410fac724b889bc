// huffman compresses and decompresses files with a per-file static Huffman
// code.
//
//	huffman encode FILE...   writes FILE.huff next to each FILE
//	huffman decode FILE...   restores FILE from each FILE.huff
//	huffman verify FILE...   round trips each FILE in memory
//
// Every file is processed even when an earlier one fails.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/Stezok/huffcodec/internal/archive"
	"github.com/Stezok/huffcodec/internal/config"
	"github.com/Stezok/huffcodec/internal/report"
)

const (
	exitWrongArgumentCount = 1
	exitUnknownMode        = 2
	exitBadConfiguration   = 3
	exitFileFailures       = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		configPath string
		suffix     string
		bufferSize int
		logLevel   string
		logFormat  string
	)

	flagSet := pflag.NewFlagSet("huffman", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML config file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&suffix, "suffix", "", "suffix of compressed files (default: .huff)")
	flagSet.IntVar(&bufferSize, "buffer-size", 0, "read chunk size in bytes")
	flagSet.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	flagSet.StringVar(&logFormat, "log-format", "", "text or json")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return exitBadConfiguration
	}

	positional := flagSet.Args()
	if len(positional) < 2 {
		printUsage(stderr, flagSet)
		return exitWrongArgumentCount
	}

	mode := positional[0]
	switch mode {
	case "encode", "decode", "verify":
	default:
		fmt.Fprintf(stdout, "Unknown Mode!: %s\n", mode)
		printUsage(stderr, flagSet)
		return exitUnknownMode
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitBadConfiguration
	}
	if flagSet.Changed("suffix") {
		cfg.Suffix = suffix
	}
	if flagSet.Changed("buffer-size") {
		cfg.BufferSize = bufferSize
	}
	if flagSet.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flagSet.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitBadConfiguration
	}

	logger := cfg.Log.NewLogger(stderr)
	arch := archive.NewArchiver(logger,
		archive.WithSuffix(cfg.Suffix),
		archive.WithBufferSize(cfg.BufferSize),
	)

	process := verifyFile
	switch mode {
	case "encode":
		process = encodeFile
	case "decode":
		process = decodeFile
	}

	failed := 0
	for _, path := range positional[1:] {
		line, err := process(arch, path)
		if err != nil {
			failed++
			fmt.Fprintf(stdout, "Unable to %s file '%s': \n%v\n", verb(mode), path, err)
			logger.Error("file failed", "mode", mode, "file", path, "error", err)
			continue
		}
		fmt.Fprintln(stdout, line)
	}

	if failed > 0 {
		logger.Debug("finished with failures", "failed", failed, "total", len(positional)-1)
		return exitFileFailures
	}
	return 0
}

func encodeFile(arch *archive.Archiver, path string) (string, error) {
	output, err := arch.CompressFile(path)
	if err != nil {
		return "", err
	}
	in, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	out, err := os.Stat(output)
	if err != nil {
		return "", err
	}
	return report.Compressed(path, output, in.Size(), out.Size()), nil
}

func decodeFile(arch *archive.Archiver, path string) (string, error) {
	output, err := arch.DecompressFile(path)
	if err != nil {
		return "", err
	}
	return report.Decompressed(path, output), nil
}

func verifyFile(arch *archive.Archiver, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	result, err := arch.Verify(file)
	if err != nil {
		return "", err
	}
	return report.Verified(path, result.BytesIn, result.BytesOut, result.DigestHex()), nil
}

func verb(mode string) string {
	switch mode {
	case "encode":
		return "compress"
	case "decode":
		return "decompress"
	default:
		return mode
	}
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: huffman [FLAGS] MODE FILES...\n")
	fmt.Fprintf(w, "  MODE\n")
	fmt.Fprintf(w, "    encode - encodes the given files\n")
	fmt.Fprintf(w, "    decode - decodes the given files\n")
	fmt.Fprintf(w, "    verify - checks that the given files survive a round trip\n")
	fmt.Fprintf(w, "\nFlags:\n%s", flagSet.FlagUsages())
}
