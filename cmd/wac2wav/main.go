// SPDX-License-Identifier: EPL-2.0

// wac2wav converts Wildlife Acoustics WAC recordings to WAV files.
//
// Usage:
//
//	wac2wav [-rate N] [-mono] <src.wac> <dst.wav>
//	wac2wav -dir [-rate N] [-mono] [-workers N] <srcdir> <outdir>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/wacdec"
)

const version = "1.0.0"

var (
	rate        int
	mono        bool
	dirMode     bool
	workers     int
	showVersion bool
)

func init() {
	flag.IntVar(&rate, "rate", 0, "Resample output to this rate in Hz (0 keeps the native rate)")
	flag.BoolVar(&mono, "mono", false, "Downmix stereo recordings to mono")
	flag.BoolVar(&dirMode, "dir", false, "Treat the arguments as directories and convert every .wac file found")
	flag.IntVar(&workers, "workers", 0, "Concurrent conversions in -dir mode (0 = number of CPUs)")
	flag.BoolVar(&showVersion, "version", false, "Display version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("wac2wav version %s\n", version)
		os.Exit(0)
	}

	if flag.NArg() != 2 {
		printUsage()
		os.Exit(1)
	}

	opts := wacdec.Options{Rate: rate, Mono: mono}

	if dirMode {
		os.Exit(convertDir(flag.Arg(0), flag.Arg(1), opts))
	}

	os.Exit(convertOne(flag.Arg(0), flag.Arg(1), opts))
}

func convertOne(src, dst string, opts wacdec.Options) int {
	fmt.Fprintf(os.Stderr, "src: %s, dest: %s \n", src, dst)

	if err := wacdec.Convert(src, dst, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func convertDir(srcDir, outDir string, opts wacdec.Options) int {
	pairs, err := findPairs(srcDir, outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if len(pairs) == 0 {
		fmt.Fprintf(os.Stderr, "No .wac files found in %s\n", srcDir)
		return 1
	}

	fmt.Printf("Converting %d WAC files from %s to %s\n", len(pairs), srcDir, outDir)

	results := wacdec.ConvertBatch(context.Background(), pairs, workers, opts)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAILED %s: %v\n", r.Src, r.Err)
			continue
		}
		fmt.Printf("Converted %s\n", filepath.Base(r.Src))
	}

	fmt.Printf("Converted %d/%d files.\n", len(results)-failed, len(results))

	if failed > 0 {
		return 1
	}
	return 0
}

// findPairs walks srcDir for .wac files and maps each to a .wav path
// under outDir, mirroring the directory structure.
func findPairs(srcDir, outDir string) ([]wacdec.Pair, error) {
	var pairs []wacdec.Pair

	err := filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || strings.ToLower(filepath.Ext(path)) != ".wac" {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		dst := filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".wav")
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}

		pairs = append(pairs, wacdec.Pair{Src: path, Dst: dst})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", srcDir, err)
	}

	return pairs, nil
}

func printUsage() {
	fmt.Println("Usage: wac2wav [options] <src.wac> <dst.wav>")
	fmt.Println("       wac2wav -dir [options] <srcdir> <outdir>")
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println("\nExamples:")
	fmt.Println("  wac2wav recording.wac recording.wav        # Lossless conversion")
	fmt.Println("  wac2wav -rate 8000 -mono in.wac out.wav    # 8kHz mono output")
	fmt.Println("  wac2wav -dir -workers 4 ./cards ./decoded  # Convert a whole card")
}
