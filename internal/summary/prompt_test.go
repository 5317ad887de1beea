package summary

import (
	"strings"
	"testing"

	"github.com/702greens/farmos/internal/models"
)

func strptr(s string) *string { return &s }

func TestBuildPrompt_EmbedsFields(t *testing.T) {
	log := &models.DailyLog{
		Date:           "2024-06-01",
		PlanHarvest:    strptr("50kg sunflower"),
		DoneHarvest:    strptr("48kg"),
		SopComplete:    strptr("no"),
		SopMissed:      strptr("tray sanitizing"),
		YieldOnTarget:  strptr("no"),
		YieldCrop:      strptr("pea shoots"),
		YieldOffReason: strptr("mold on two trays"),
		TimeStart:      strptr("06:00"),
		TimeEnd:        strptr("14:30"),
		TomorrowFocus:  strptr("restock delivery boxes"),
	}

	got := BuildPrompt(log)

	for _, want := range []string{
		"DAILY LOG - 2024-06-01",
		"702Greens microgreens farm",
		"- Planned Harvest: 50kg sunflower",
		"- Actual Harvest: 48kg",
		"- Complete: no",
		"- If NO - Missed: tray sanitizing",
		"- Crop (if off): pea shoots",
		"- Issue: mold on two trays",
		"- 06:00 to 14:30",
		"- Focus/Risk: restock delivery boxes",
		"Overall status",
		"2-3 sentence",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_AbsentFieldPlaceholders(t *testing.T) {
	got := BuildPrompt(&models.DailyLog{Date: "2024-06-01"})

	for _, want := range []string{
		"- Planned Harvest: none",
		"- Actual Plant: none",
		"- Complete: N/A",
		"- On Target: N/A",
		"- N/A to N/A",
		"- Focus/Risk: N/A",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing placeholder line %q", want)
		}
	}
}

func TestBuildPrompt_EmptyStringTreatedAsAbsent(t *testing.T) {
	log := &models.DailyLog{Date: "2024-06-01", PlanHarvest: strptr("")}
	if !strings.Contains(BuildPrompt(log), "- Planned Harvest: none") {
		t.Error("empty string should render as none")
	}
}
