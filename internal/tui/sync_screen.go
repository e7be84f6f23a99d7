package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

func renderStatus(
	spin string,
	tenant string,
	status models.SyncStatus,
	result *models.SyncResult,
	counts map[models.Kind]int,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tenant:     %s\n", fitText(tenant, 40))

	if status.IsOnline {
		fmt.Fprintf(&b, "Connection: %s\n", onlineStyle.Render("online"))
	} else {
		fmt.Fprintf(&b, "Connection: %s\n", offlineStyle.Render("offline"))
	}

	switch {
	case status.IsSyncing:
		fmt.Fprintf(&b, "Sync:       %s syncing...\n", spin)
	case status.Error != "":
		fmt.Fprintf(&b, "Sync:       %s\n", errorStyle.Render("failed"))
	default:
		b.WriteString("Sync:       idle\n")
	}

	if status.LastSyncTime != nil {
		fmt.Fprintf(&b, "Last sync:  %s\n", status.LastSyncTime.Local().Format(time.DateTime))
	} else {
		b.WriteString("Last sync:  never\n")
	}

	if result != nil {
		fmt.Fprintf(&b, "Bootstrap:  %s", result.Status)
		if n := result.Data.Count(); n > 0 {
			fmt.Fprintf(&b, " (%d records)", n)
		}
		b.WriteString("\n")
	}

	if len(counts) > 0 {
		b.WriteString("\nLocal records\n")
		for _, kind := range models.SyncOrder {
			fmt.Fprintf(&b, "  %-16s %d\n", kind, counts[kind])
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
