package summary

import (
	"fmt"
	"strings"

	"github.com/702greens/farmos/internal/models"
)

// BuildPrompt renders the fixed analysis prompt for one day's log. Absent
// fields are shown as "none" (plan/actual) or "N/A" (everything else) so the
// model sees an explicit gap rather than an empty line.
func BuildPrompt(log *models.DailyLog) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DAILY LOG - %s\n\n", log.Date)

	b.WriteString("PLAN vs ACTUAL:\n")
	fmt.Fprintf(&b, "- Planned Harvest: %s\n", orNone(log.PlanHarvest))
	fmt.Fprintf(&b, "- Actual Harvest: %s\n", orNone(log.DoneHarvest))
	fmt.Fprintf(&b, "- Planned Plant: %s\n", orNone(log.PlanPlant))
	fmt.Fprintf(&b, "- Actual Plant: %s\n\n", orNone(log.DonePlant))

	b.WriteString("SOP COMPLIANCE:\n")
	fmt.Fprintf(&b, "- Complete: %s\n", orNA(log.SopComplete))
	fmt.Fprintf(&b, "- If NO - Missed: %s\n", orNA(log.SopMissed))
	fmt.Fprintf(&b, "- Why: %s\n\n", orNA(log.SopWhy))

	b.WriteString("YIELD:\n")
	fmt.Fprintf(&b, "- On Target: %s\n", orNA(log.YieldOnTarget))
	fmt.Fprintf(&b, "- Crop (if off): %s\n", orNA(log.YieldCrop))
	fmt.Fprintf(&b, "- Issue: %s\n", orNA(log.YieldOffReason))
	fmt.Fprintf(&b, "- Action: %s\n\n", orNA(log.YieldAction))

	b.WriteString("TIME:\n")
	fmt.Fprintf(&b, "- %s to %s\n", orNA(log.TimeStart), orNA(log.TimeEnd))
	fmt.Fprintf(&b, "- Biggest drain: %s\n", orNA(log.TimeDrain))
	fmt.Fprintf(&b, "- Reason: %s\n\n", orNA(log.TimeWhy))

	b.WriteString("TOMORROW:\n")
	fmt.Fprintf(&b, "- Focus/Risk: %s\n", orNA(log.TomorrowFocus))

	return fmt.Sprintf(`You are analyzing a daily farm operations log for 702Greens microgreens farm.

%s

Provide a SHORT 2-3 sentence text message summary that includes:
1. Overall status (✓ Green / ⚠ Yellow / ⚠ Red)
2. Key issue if any
3. One action if needed

Keep it like a text message - concise and actionable. Include emoji.`, b.String())
}

func orNone(s *string) string {
	if s == nil || *s == "" {
		return "none"
	}
	return *s
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
