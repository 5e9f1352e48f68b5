// Command orangic is a small CLI for the Orangic API: an interactive
// streaming chat session plus balance and usage queries.
//
// The API key is read from ORANGIC_API_KEY (a .env file in the current
// directory is loaded when present). Other settings come from the
// layered config (see pkg/config).
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/orangic/orangic-go/pkg/api"
	"github.com/orangic/orangic-go/pkg/config"
	"github.com/orangic/orangic-go/pkg/debug"
	"github.com/orangic/orangic-go/pkg/orangic"
)

var (
	configPath string
	modelName  string
)

func main() {
	// Best effort; the environment may already carry the key.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "orangic",
		Short:         "Interact with the Orangic API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive streaming chat session",
		RunE:  runChat,
	}
	chatCmd.Flags().StringVar(&modelName, "model", "orangic-1", "model to use")

	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance for this API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			balance, err := client.Balance(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(balance)
		},
	}

	var days int
	usageCmd := &cobra.Command{
		Use:   "usage",
		Short: "Show the usage report",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			report, err := client.UsageReport(cmd.Context(), days)
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}
	usageCmd.Flags().IntVar(&days, "days", 30, "number of days to look back (server enforces 1-365)")

	rootCmd.AddCommand(chatCmd, balanceCmd, usageCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newClient loads configuration and builds the API client.
func newClient() (*orangic.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	debug.Init(cfg.Logging.Debug, cfg.Logging.Level)
	return orangic.New(cfg.ToClient())
}

func runChat(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Printf("Chatting with %s. Type 'exit' to quit.\n", modelName)

	var messages []any
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" {
			break
		}

		messages = append(messages, api.Message{Role: "user", Content: input})

		reply, err := streamReply(cmd.Context(), client, messages)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
			continue
		}
		messages = append(messages, api.Message{Role: "assistant", Content: reply})
	}
	return scanner.Err()
}

// streamReply sends the conversation, prints chunks as they arrive,
// and returns the assembled assistant reply for the history.
func streamReply(ctx context.Context, client *orangic.Client, messages []any) (string, error) {
	stream, err := client.CreateCompletionStream(ctx, &orangic.CompletionRequest{
		Model:    modelName,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var reply strings.Builder
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return reply.String(), err
		}
		// Only the final channel belongs in the transcript.
		if chunk.Channel != "final" {
			continue
		}
		fmt.Print(chunk.Content)
		reply.WriteString(chunk.Content)
	}
	fmt.Println()
	return reply.String(), nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
