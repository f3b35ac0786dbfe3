package features

import "strings"

// Answer vocabulary the model was trained on (Somali).
const (
	TokenYes = "haa"
	TokenNo  = "maya"

	SeverityMild     = "fudud"
	SeverityModerate = "dhexdhexaad"
	SeveritySevere   = "aad u daran"
)

var (
	YesNoOptions        = []string{TokenYes, TokenNo}
	SeverityOptions     = []string{SeverityMild, SeverityModerate, SeveritySevere}
	CoughTypeOptions    = []string{"qalalan", "qoyan"}
	PainLocationOptions = []string{"caloosha sare", "caloosha hoose", "caloosha oo dhan"}
	AgeGroupOptions     = []string{"caruur", "qof weyn", "waayeel"}
)

// Duration answers are shown to users as phrases but the model expects level
// tokens. The "dhexdhexaad ah" spelling appears in older training data and
// collapses to "dhexdhexaad".
var durationTokenToDisplay = []struct {
	token   string
	display string
}{
	{"fudud", "hal maalin iyo ka yar"},
	{"dhexdhexaad", "labo illaa sadax maalin"},
	{"dhexdhexaad ah", "labo illaa sadax maalin"},
	{"aad u daran", "sadax maalin iyo ka badan"},
}

// DurationDisplays returns the distinct duration phrases in presentation order.
func DurationDisplays() []string {
	seen := make(map[string]struct{})
	var displays []string
	for _, d := range durationTokenToDisplay {
		if _, ok := seen[d.display]; ok {
			continue
		}
		seen[d.display] = struct{}{}
		displays = append(displays, d.display)
	}
	return displays
}

// DurationToken maps a duration answer to its model token. Display phrases
// resolve to their level token; anything else passes through unchanged.
func DurationToken(answer string) string {
	for _, d := range durationTokenToDisplay {
		if d.display == answer {
			if strings.HasPrefix(d.token, "dhexdhexaad") {
				return SeverityModerate
			}
			return d.token
		}
	}
	return answer
}
