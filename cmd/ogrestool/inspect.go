package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vearutop/ogres"
)

func newInspectCmd() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the header and layer table of an OGRES file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().Bool("lenient", false, "Ignore the declared total size")
	inspectCmd.Flags().Bool("json", false, "Print the layer manifest as JSON")
	return inspectCmd
}

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file]",
		Short: "Report whether a file carries the OGRES signature",
		Args:  cobra.ExactArgs(1),
		RunE:  runDetect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	lenient, _ := cmd.Flags().GetBool("lenient")
	asJSON, _ := cmd.Flags().GetBool("json")

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	lenientOpt := func(o *ogres.DecodeOptions) {
		o.IgnoreTotalSize = lenient
	}

	out := cmd.OutOrStdout()
	if asJSON {
		m, err := ogres.BuildManifest(data, lenientOpt)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", path)
		}
		payload, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(payload))
		return nil
	}

	h, layers, err := ogres.Inspect(data, lenientOpt)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}

	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "File size:  %d bytes\n", len(data))
	fmt.Fprintf(out, "Layers:     %d\n", h.LayerCount)
	fmt.Fprintf(out, "Payload:    %d bytes\n", h.TotalSize)
	for _, l := range layers {
		fmt.Fprintf(out, "  #%-3d %5d x %-5d sz_total=%-5d offset=%d\n", l.Index, l.Width, l.Height, l.Size, l.Offset)
	}
	return nil
}

func runDetect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(filepath.Clean(args[0]))
	if err != nil {
		return err
	}
	defer f.Close()

	ok, err := ogres.IsOGRES(f)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(cmd.OutOrStdout(), "ogres")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "not ogres")
	return nil
}
