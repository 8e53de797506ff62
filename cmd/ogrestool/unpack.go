package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vearutop/ogres"
)

func newUnpackCmd() *cobra.Command {
	unpackCmd := &cobra.Command{
		Use:   "unpack",
		Short: "Extract every layer of an OGRES file as PNG",
		RunE:  runUnpack,
	}
	unpackCmd.Flags().StringP("input", "i", "", "Input OGRES file")
	unpackCmd.Flags().StringP("output", "o", ".", "Output directory")
	unpackCmd.Flags().Bool("lenient", false, "Ignore the declared total size and navigate by layer sizes")
	unpackCmd.MarkFlagRequired("input")
	return unpackCmd
}

func runUnpack(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outDir, _ := cmd.Flags().GetString("output")
	lenient, _ := cmd.Flags().GetBool("lenient")

	data, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return errors.Wrapf(err, "reading %s", inputPath)
	}
	lenientOpt := func(o *ogres.DecodeOptions) {
		o.IgnoreTotalSize = lenient
	}
	images, manifest, err := ogres.DecodeManifest(data, lenientOpt)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", inputPath)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	for i, img := range images {
		file := fmt.Sprintf("layer_%03d.png", i)
		name := filepath.Join(outDir, file)
		if err := writePNG(name, img); err != nil {
			return errors.Wrapf(err, "writing %s", name)
		}
		manifest.Layers[i].File = file
		fmt.Fprintf(cmd.OutOrStdout(), "Layer %d: %dx%d -> %s\n", i, img.Width, img.Height, name)
	}

	payload, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	manifestPath := filepath.Join(outDir, manifestName)
	if err := os.WriteFile(manifestPath, payload, 0o644); err != nil {
		return errors.Wrap(err, "writing manifest")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Manifest: %s\n", manifestPath)
	return nil
}

const manifestName = "manifest.json"

func writePNG(path string, img ogres.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
