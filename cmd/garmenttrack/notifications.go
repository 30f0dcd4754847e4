package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/atozgarments/garmenttrack/internal/notify"
)

// Notifications are process-local: this view shows what the mutations of the
// current invocation produced.
var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show notifications from this session",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := a.notices.List()
		if len(items) == 0 {
			fmt.Println("No notifications")
			return nil
		}

		now := time.Now()
		for _, n := range items {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Printf("%s %s %s: %s (%s)\n",
				marker, colorKind(n.Type), n.Title, n.Message, notify.RelativeTime(n.CreatedAt, now))
		}
		fmt.Printf("\n%d unread\n", a.notices.UnreadCount())
		return nil
	},
}

func colorKind(kind string) string {
	switch kind {
	case notify.TypeSuccess:
		return color.GreenString("[%s]", kind)
	case notify.TypeWarning:
		return color.YellowString("[%s]", kind)
	case notify.TypeError:
		return color.RedString("[%s]", kind)
	default:
		return fmt.Sprintf("[%s]", kind)
	}
}
