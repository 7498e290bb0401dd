package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tago-io/tagotip-go/secure"
)

var openKeyHex string

var openCmd = &cobra.Command{
	Use:   "open <hex-envelope>",
	Short: "Open a TagoTiP/S envelope and print its header and inner frame",
	Long: `Open authenticates and decrypts a hex-encoded envelope as produced by
"tagotip seal", printing the parsed header fields and the recovered
headless inner frame.`,
	Example: `  tagotip open --key 000102030405060708090a0b0c0d0e0f 20000000014deedd7bab8817ec...`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().StringVar(&openKeyHex, "key", "", "symmetric key, hex-encoded (required)")
	_ = openCmd.MarkFlagRequired("key")
}

func runOpen(cmd *cobra.Command, args []string) error {
	key, err := hex.DecodeString(openKeyHex)
	if err != nil {
		return fmt.Errorf("decode key: %w", err)
	}
	data, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}

	header, plaintext, cerr := secure.OpenEnvelope(key, data)
	if cerr != nil {
		return fmt.Errorf("open: %w", cerr)
	}

	fmt.Printf("cipher=%v method=%v counter=%d auth_hash=%x device_hash=%x\n",
		header.Flags.Cipher, header.Flags.Method, header.Counter, header.AuthHash, header.DeviceHash)
	fmt.Println(string(plaintext))
	return nil
}
