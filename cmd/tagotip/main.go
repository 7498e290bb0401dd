// SAGE - Secure Agent Guarantee Engine
// Copyright (C) 2025 SAGE-X-project
//
// This file is part of SAGE.
//
// SAGE is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SAGE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with SAGE. If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tagotip",
	Short: "TagoTiP CLI - telemetry frame and secure envelope tooling",
	Long: `tagotip parses, builds, seals, and opens TagoTiP uplink/downlink frames and
TagoTiP/S secure envelopes from the command line.

This tool supports:
- Parsing plaintext PUSH/PULL/PING/ACK frames and building PUSH/PULL/PING
  frames
- Sealing a frame into an AEAD-protected envelope (AES-CCM, AES-GCM,
  ChaCha20-Poly1305)
- Opening a sealed envelope back into its plaintext frame
- A combined roundtrip check that parses, seals, opens, and reparses a
  frame in one pass`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Note: Commands are registered in their respective files
	// - parse.go: parseCmd
	// - build.go: buildCmd
	// - seal.go: sealCmd
	// - open.go: openCmd
	// - roundtrip.go: roundtripCmd
}
