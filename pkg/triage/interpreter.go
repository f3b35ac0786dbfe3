package triage

import (
	"strings"

	"github.com/caafimaad-ai/triage/pkg/common/models"
)

// Tier is the triage severity of a decoded label. It owns no state and is
// recomputed from the label each time.
type Tier string

const (
	TierHomeCare   Tier = "home-care"
	TierOutpatient Tier = "outpatient"
	TierEmergency  Tier = "emergency"
)

// Label cues, tested against the lowercased label. The emergency test runs
// before the outpatient test: a label matching both resolves to the more
// severe tier.
const (
	emergencyCue  = "deg deg"
	outpatientCue = "dhax dhaxaad"
)

// TierFor maps a decoded label to its severity tier by substring presence.
func TierFor(label string) Tier {
	t := strings.ToLower(label)
	if strings.Contains(t, emergencyCue) {
		return TierEmergency
	}
	if strings.Contains(t, outpatientCue) {
		return TierOutpatient
	}
	return TierHomeCare
}

// Style returns the fixed presentation triple for the tier.
func (t Tier) Style() models.Style {
	switch t {
	case TierEmergency:
		return models.Style{Background: "#FFEBEE", Foreground: "#B71C1C", Border: "#EF9A9A"}
	case TierOutpatient:
		return models.Style{Background: "#FFF8E1", Foreground: "#8D6E00", Border: "#FFD54F"}
	default:
		return models.Style{Background: "#E8F5E9", Foreground: "#1B5E20", Border: "#A5D6A7"}
	}
}

// Interpreter turns a decoded label into a tier, its styling, and an
// actionable recommendation.
type Interpreter struct {
	catalog Catalog
}

func NewInterpreter(catalog Catalog) *Interpreter {
	return &Interpreter{catalog: catalog}
}

// Interpret returns the tier, the tier's styling, and the recommendation for
// the label. Styling follows the tier; the recommendation is keyed by the
// exact label text with a generic fallback on a miss.
func (i *Interpreter) Interpret(label string) (Tier, models.Style, string) {
	tier := TierFor(label)
	return tier, tier.Style(), i.catalog.Recommendation(label)
}

func (i *Interpreter) Notice() string {
	return i.catalog.Notice
}
