package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tago-io/tagotip-go/codec"
)

var buildJSONFile string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a plaintext uplink frame from a JSON description",
	Long: `Build reads a JSON-encoded codec.UplinkFrame (the same shape printed by
"tagotip parse") from stdin, or from --file, and prints the serialized
wire frame.`,
	Example: `  echo '{"Method":0,"Auth":"ate2bd319014b24e0a8aca9f00aea4c0d0","Serial":"sensor-01","PushBody":{"Kind":1,"Passthrough":{"Encoding":0,"Data":"deadbeef"}}}' | tagotip build`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildJSONFile, "file", "f", "", "read the frame description from this file instead of stdin")
}

func runBuild(cmd *cobra.Command, args []string) error {
	var raw []byte
	var err error
	if buildJSONFile != "" {
		raw, err = os.ReadFile(buildJSONFile)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read frame description: %w", err)
	}

	var frame codec.UplinkFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return fmt.Errorf("decode frame description: %w", err)
	}

	buf := make([]byte, codec.MaxFrameSize)
	built, berr := codec.BuildUplink(frame, buf)
	if berr != nil {
		return fmt.Errorf("build frame: %w", berr)
	}

	fmt.Println(string(built))
	return nil
}
