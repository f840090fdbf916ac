package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"folio/internal/logger"
)

var messagesLimit int

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List contact messages, newest first",
	Args:  cobra.NoArgs,
	RunE:  runMessages,
}

func init() {
	messagesCmd.Flags().IntVarP(&messagesLimit, "limit", "n", 20, "number of messages to show")
}

func runMessages(cmd *cobra.Command, _ []string) error {
	logger.InitWriter(cmd.ErrOrStderr())

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	msgs, err := a.contact.Recent(commandContext(cmd), messagesLimit)
	if err != nil {
		return fmt.Errorf("listing messages: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(msgs) == 0 {
		fmt.Fprintln(out, "No messages yet.")
		return nil
	}
	for _, m := range msgs {
		body := strings.Join(strings.Fields(m.Body), " ")
		fmt.Fprintf(out, "%s  %s <%s>  %s\n  %s\n",
			m.ID[:min(8, len(m.ID))], m.Name, m.Email, humanize.Time(m.CreatedAt),
			runewidth.Truncate(body, 72, "…"))
	}
	return nil
}
