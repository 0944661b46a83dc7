package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/coachdesk/internal/recommend"
)

type RecommendCmd struct {
	Client string `arg:"" optional:"" help:"Client id whose coaching goals are used."`
	Goals  string `short:"g" help:"Free-text goals, used instead of a client's goals."`
}

func (c *RecommendCmd) Validate() error {
	if c.Client == "" && strings.TrimSpace(c.Goals) == "" {
		return fmt.Errorf("either a client id or --goals is required")
	}
	return nil
}

func (c *RecommendCmd) Run(ctx *Context) error {
	goals := c.Goals
	if goals == "" {
		client, err := ctx.Clients.Get(c.Client)
		if err != nil {
			return err
		}
		goals = client.CoachingGoals
		ctx.printf("Goals of %s: %q\n", client.FullName(), goals)
	}

	r := recommend.New(nil)
	methods := r.Recommend(goals, ctx.Methods.All())
	if len(methods) == 0 {
		ctx.println("No matching methods.")
		return nil
	}

	ctx.println("Recommended methods:")
	for _, m := range methods {
		var reasons []string
		for _, rule := range r.Explain(goals, m) {
			reasons = append(reasons, fmt.Sprintf("%q in goals, %q in %s", rule.GoalTerm, rule.MethodTerm, rule.Field))
		}
		ctx.printf("  %s (%s, %d min)\n", m.Name, m.ID, m.DurationMin)
		ctx.printf("      because %s\n", strings.Join(reasons, "; "))
	}
	return nil
}
