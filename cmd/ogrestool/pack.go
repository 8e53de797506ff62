package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vearutop/ogres"
)

func newPackCmd() *cobra.Command {
	packCmd := &cobra.Command{
		Use:   "pack [images...]",
		Short: "Pack images into an OGRES file, one layer per image",
		RunE:  runPack,
	}
	packCmd.Flags().StringP("output", "o", "", "Output OGRES file (.ogres is appended when missing)")
	packCmd.Flags().Bool("fit", false, "Downscale images that do not fit a single layer")
	packCmd.Flags().String("manifest", "", "Rebuild from a manifest written by unpack")
	packCmd.Flags().String("interp", "bilinear", "Interpolation for --fit (nearest, bilinear, bicubic, mitchell, lanczos2, lanczos3)")
	packCmd.MarkFlagRequired("output")
	return packCmd
}

func runPack(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	outputPath = withExtension(outputPath)
	fit, _ := cmd.Flags().GetBool("fit")
	interpStr, _ := cmd.Flags().GetString("interp")
	manifestPath, _ := cmd.Flags().GetString("manifest")

	interp, err := ogres.ParseInterpolation(interpStr)
	if err != nil {
		return err
	}

	var manifest *ogres.Manifest
	if manifestPath != "" {
		if len(args) > 0 {
			return errors.New("pass either image files or --manifest, not both")
		}
		manifest, err = readManifest(manifestPath)
		if err != nil {
			return err
		}
		dir := filepath.Dir(manifestPath)
		for _, l := range manifest.Layers {
			args = append(args, filepath.Join(dir, l.File))
		}
	}

	var images []ogres.Image
	for _, path := range args {
		if !ogres.IsSupportedFile(path) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Skipping %s: unsupported file type\n", path)
			continue
		}
		img, err := ogres.LoadImage(path, func(o *ogres.LoadOptions) {
			o.Fit = fit
			o.Interpolation = interp
		})
		if err != nil {
			return errors.Wrapf(err, "loading %s", path)
		}
		images = append(images, img)
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %s (%dx%d)\n", filepath.Base(path), img.Width, img.Height)
	}

	if manifest != nil {
		if err := manifest.Check(images); err != nil {
			return errors.Wrap(err, "checking manifest")
		}
	}

	if err := ogres.EncodeFile(outputPath, images); err != nil {
		return errors.Wrap(err, "saving OGRES file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d layers to %s\n", len(images), outputPath)
	return nil
}

func readManifest(path string) (*ogres.Manifest, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "reading manifest")
	}
	var m ogres.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// withExtension appends the OGRES extension to paths that have none.
func withExtension(path string) string {
	if filepath.Ext(path) == "" && !strings.HasSuffix(path, string(filepath.Separator)) {
		return path + ogres.Extension
	}
	return path
}
