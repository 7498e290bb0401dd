package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tago-io/tagotip-go/codec"
)

var parseAsAck bool

var parseCmd = &cobra.Command{
	Use:   "parse <frame>",
	Short: "Parse a plaintext TagoTiP frame and print it as JSON",
	Long: `Parse a plaintext uplink (PUSH/PULL/PING) or, with --ack, downlink (ACK)
frame and print the decoded structure as JSON.`,
	Example: `  # Parse an uplink frame
  tagotip parse 'PUSH|!1|ate2bd319014b24e0a8aca9f00aea4c0d0|sensor-01|[temp:=23.5]'

  # Parse a downlink ACK frame
  tagotip parse --ack 'ACK|!1|OK|1'`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseAsAck, "ack", false, "parse the argument as a downlink ACK frame instead of an uplink frame")
}

func runParse(cmd *cobra.Command, args []string) error {
	frame := args[0]

	if parseAsAck {
		ack, perr := codec.ParseAck(frame)
		if perr != nil {
			return fmt.Errorf("parse ack: %w", perr)
		}
		return printJSON(ack)
	}

	uplink, perr := codec.ParseUplink(frame)
	if perr != nil {
		return fmt.Errorf("parse uplink: %w", perr)
	}
	return printJSON(uplink)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
