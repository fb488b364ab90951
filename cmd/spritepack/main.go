// Package main provides the CLI entry point for spritepack.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/spritepack-go/pkg/spritepack"
	"github.com/ukaji3/spritepack-go/pkg/spritepack/atlas"
	"github.com/ukaji3/spritepack-go/pkg/spritepack/output"
)

var (
	scale        string
	exportMode   bool
	maxSize      int
	manifestPath string
	xlsxPath     string
	pretty       bool
	padding      int
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the exit status. Failures are reported as
// a single "Error: " line on stdout, which is what importers look for.
// Warnings go to stderr so stdout carries nothing but the record.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stdout, atlas.ErrorPrefix+err.Error())
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spritepack",
		Short: "Pack a folder of transparent images into one sprite sheet",
		Long: `spritepack trims a folder of png images to their opaque content, lays
them out on a grid and saves a square power-of-two sprite sheet.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	packCmd := &cobra.Command{
		Use:   "pack <folder> [output.png]",
		Short: "Pack every png in a folder",
		Long: `Pack every png directly inside <folder> into one sheet.

Without an output path the sheet is saved as <folder name>.png in the
current directory. With --export only the atlas record is printed:

  <size>&&<columns>&&<name>;<w>,<h>&&...`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runPack,
	}
	packCmd.Flags().StringVar(&scale, "scale", "1", "Sprite scale: 0.25, 0.5 or 1")
	packCmd.Flags().BoolVar(&exportMode, "export", false, "Print the atlas record instead of progress lines")
	packCmd.Flags().IntVar(&maxSize, "max-size", 0, "Largest sheet size to consider (default: 8192)")
	packCmd.Flags().StringVar(&manifestPath, "manifest", "", "Also write a JSON manifest to this path")
	packCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write an xlsx manifest to this path")
	packCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	sliceCmd := &cobra.Command{
		Use:   "slice [record]",
		Short: "Print the sprite rectangles described by an atlas record",
		Long: `Decode an atlas record (from the argument or stdin) and print one
rectangle per sprite, origin bottom-left with Y up, as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSlice,
	}
	sliceCmd.Flags().IntVar(&padding, "padding", spritepack.DefaultOptions().Padding, "Padding the sheet was packed with")
	sliceCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(packCmd, sliceCmd)
	return rootCmd
}

func runPack(cmd *cobra.Command, args []string) error {
	folder := args[0]
	savePath := filepath.Base(filepath.Clean(folder)) + ".png"
	if len(args) > 1 {
		savePath = args[1]
	}

	s, err := spritepack.ParseScale(scale)
	if err != nil {
		return err
	}
	opts := spritepack.DefaultOptions()
	opts.Scale = s
	if maxSize > 0 {
		if opts, err = opts.WithMaxSize(maxSize); err != nil {
			return err
		}
	}

	if exportMode {
		return runExport(cmd.OutOrStdout(), cmd.ErrOrStderr(), folder, savePath, opts)
	}
	return runInteractive(cmd.OutOrStdout(), folder, savePath, opts)
}

// runInteractive reports progress line by line.
func runInteractive(out io.Writer, folder, savePath string, opts spritepack.Options) error {
	logger := log.New(out, "", 0)
	opts.Mode = spritepack.ModeLog
	opts.Logger = logger

	res, err := spritepack.Export(folder, savePath, opts)
	if err != nil {
		return err
	}
	for _, name := range res.Dropped {
		logger.Printf("Skipped fully transparent image: %s", name)
	}
	if err := writeManifests(res, savePath, opts); err != nil {
		return err
	}
	logger.Printf("Done")
	return nil
}

// runExport prints nothing but the atlas record on out. A sheet that
// overflows the largest size is reported on errOut.
func runExport(out, errOut io.Writer, folder, savePath string, opts spritepack.Options) error {
	opts.Mode = spritepack.ModeExport
	opts.Logger = nil

	res, err := spritepack.Export(folder, savePath, opts)
	if err != nil {
		return err
	}
	if err := writeManifests(res, savePath, opts); err != nil {
		return err
	}
	if res.Sheet.Overflow {
		fmt.Fprintln(errOut, res.Warning)
	}
	if opts.ShouldEmitRecord() {
		fmt.Fprintln(out, res.Record.String())
	}
	return nil
}

// writeManifests writes the optional manifest files. On failure the sheet and
// any manifest already written are removed so the run leaves no partial output.
func writeManifests(res *spritepack.Result, savePath string, opts spritepack.Options) error {
	m := res.Manifest(savePath, opts.Padding)
	written := []string{savePath}

	var err error
	if manifestPath != "" {
		var data []byte
		if data, err = output.ToJSON(m, pretty); err == nil {
			if err = os.WriteFile(manifestPath, data, 0644); err == nil {
				written = append(written, manifestPath)
			}
		}
	}
	if err == nil && xlsxPath != "" {
		err = output.WriteXLSX(m, xlsxPath)
	}
	if err != nil {
		for _, p := range written {
			os.Remove(p)
		}
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

func runSlice(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return errors.New("no atlas record given")
	}

	record, err := atlas.Decode(text)
	if err != nil {
		return err
	}

	jsonData, err := output.EntriesToJSON(record.Entries(padding), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
