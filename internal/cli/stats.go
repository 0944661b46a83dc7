package cli

import (
	"sort"

	"github.com/julianstephens/coachdesk/internal/models"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}
	stats := ctx.Sessions.Stats()

	ctx.printf("Sessions: %d (%.1f h)\n", stats.Total, stats.TotalHours)
	for _, status := range models.AllSessionStatuses {
		if n := stats.ByStatus[status]; n > 0 {
			ctx.printf("  %-12s %d\n", status, n)
		}
	}

	if stats.RatedSessions > 0 {
		ctx.printf("Average rating: %.2f over %d sessions\n", stats.AverageRating, stats.RatedSessions)
	} else {
		ctx.println("Average rating: no feedback yet")
	}

	if len(stats.MethodUsage) > 0 {
		ids := make([]string, 0, len(stats.MethodUsage))
		for id := range stats.MethodUsage {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			if stats.MethodUsage[ids[i]] != stats.MethodUsage[ids[j]] {
				return stats.MethodUsage[ids[i]] > stats.MethodUsage[ids[j]]
			}
			return ids[i] < ids[j]
		})
		ctx.println("Methods used:")
		for _, id := range ids {
			name := id
			if m, err := ctx.Methods.Get(id); err == nil {
				name = m.Name
			}
			ctx.printf("  %-32s %d\n", name, stats.MethodUsage[id])
		}
	}
	return nil
}
