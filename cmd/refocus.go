package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alantheprice/ledit/pkg/refocus"
	"github.com/alantheprice/ledit/pkg/utils"
	"github.com/spf13/cobra"
)

var refocusInputFile string

// refocusCmd represents the refocus command
var refocusCmd = &cobra.Command{
	Use:   "refocus",
	Short: "Rewrite a chat-completions message list into a compacted context",
	Long: `Reads a chat-completions message list as JSON (from --file or stdin) and
writes the refocused, compacted message list as JSON to stdout. The final
live tool-call cycle is preserved intact; earlier tool-call/result pairs are
collapsed into a context block inside a regenerated system prompt; prior
file-I/O tool traffic is replaced by a virtual filesystem snapshot re-read
from disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := utils.GetLogger(true)

		raw, err := readRefocusInput()
		if err != nil {
			logger.LogError(err)
			return fmt.Errorf("failed to read input messages: %w", err)
		}

		var messages []refocus.Message
		if err := json.Unmarshal(raw, &messages); err != nil {
			logger.LogError(err)
			return fmt.Errorf("failed to decode input messages: %w", err)
		}

		out := refocus.Refocus(messages)
		logger.Logf("refocus: %d input messages -> %d output messages", len(messages), len(out))
		utils.GetRunLogger().LogEvent("refocus_cmd", map[string]any{
			"input_messages":  len(messages),
			"output_messages": len(out),
		})

		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			logger.LogError(err)
			return fmt.Errorf("failed to encode output messages: %w", err)
		}

		fmt.Println(string(encoded))
		return nil
	},
}

func readRefocusInput() ([]byte, error) {
	if refocusInputFile != "" {
		return os.ReadFile(refocusInputFile)
	}
	return io.ReadAll(os.Stdin)
}

func init() {
	refocusCmd.Flags().StringVar(&refocusInputFile, "file", "", "path to a JSON message list (defaults to stdin)")
	rootCmd.AddCommand(refocusCmd)
}
