package features

import (
	"fmt"
	"strings"
)

// AnswerKind selects the answer vocabulary for a follow-up question.
type AnswerKind string

const (
	AnswerYesNo        AnswerKind = "yn"
	AnswerSeverity     AnswerKind = "sev"
	AnswerCoughType    AnswerKind = "cough"
	AnswerPainLocation AnswerKind = "painloc"
	AnswerDuration     AnswerKind = "dur"
)

type FollowUp struct {
	Field  string     `json:"field"`
	Prompt string     `json:"prompt"`
	Kind   AnswerKind `json:"kind"`
}

// Group is one symptom question group. Selecting a group sets its presence
// flag and admits its follow-up answers.
type Group struct {
	Name      string     `json:"name"`
	Flag      string     `json:"flag"`
	FollowUps []FollowUp `json:"follow_ups"`
}

var symptomGroups = []Group{
	{
		Name: "Qandho",
		Flag: "Has_Fever",
		FollowUps: []FollowUp{
			{Field: "Fever_Level", Prompt: "Heerka qandhada", Kind: AnswerSeverity},
			{Field: "Fever_Duration_Level", Prompt: "Mudada qandhada", Kind: AnswerDuration},
			{Field: "Chills", Prompt: "Qarqaryo", Kind: AnswerYesNo},
		},
	},
	{
		Name: "Qufac",
		Flag: "Has_Cough",
		FollowUps: []FollowUp{
			{Field: "Cough_Type", Prompt: "Nuuca qufaca", Kind: AnswerCoughType},
			{Field: "Cough_Duration_Level", Prompt: "Mudada qufaca", Kind: AnswerDuration},
			{Field: "Blood_Cough", Prompt: "Qufac dhiig", Kind: AnswerYesNo},
			{Field: "Breath_Difficulty", Prompt: "Neef qabasho", Kind: AnswerYesNo},
		},
	},
	{
		Name: "Madax-xanuun",
		Flag: "Has_Headache",
		FollowUps: []FollowUp{
			{Field: "Headache_Severity", Prompt: "Heerka madax-xanuunka", Kind: AnswerSeverity},
			{Field: "Headache_Duration_Level", Prompt: "Mudada madax-xanuunka", Kind: AnswerDuration},
			{Field: "Photophobia", Prompt: "Iftiinka ku dhibaya", Kind: AnswerYesNo},
			{Field: "Neck_Stiffness", Prompt: "Qoor adkaaday", Kind: AnswerYesNo},
		},
	},
	{
		Name: "Calool-xanuun",
		Flag: "Has_Abdominal_Pain",
		FollowUps: []FollowUp{
			{Field: "Pain_Location", Prompt: "Goobta xanuunka caloosha", Kind: AnswerPainLocation},
			{Field: "Pain_Duration_Level", Prompt: "Mudada xanuunka caloosha", Kind: AnswerDuration},
			{Field: "Nausea", Prompt: "Lallabbo", Kind: AnswerYesNo},
			{Field: "Diarrhea", Prompt: "Shuban", Kind: AnswerYesNo},
		},
	},
	{
		Name: "Daal",
		Flag: "Has_Fatigue",
		FollowUps: []FollowUp{
			{Field: "Fatigue_Severity", Prompt: "Heerka daalka", Kind: AnswerSeverity},
			{Field: "Fatigue_Duration_Level", Prompt: "Mudada daalka", Kind: AnswerDuration},
			{Field: "Weight_Loss", Prompt: "Miisaan dhimista", Kind: AnswerYesNo},
		},
	},
	{
		Name: "Matag",
		Flag: "Has_Vomiting",
		FollowUps: []FollowUp{
			{Field: "Vomiting_Severity", Prompt: "Heerka matagga", Kind: AnswerSeverity},
			{Field: "Vomiting_Duration_Level", Prompt: "Mudada matagga", Kind: AnswerDuration},
			{Field: "Blood_Vomit", Prompt: "Matag dhiig", Kind: AnswerYesNo},
			{Field: "Unable_To_Keep_Fluids", Prompt: "Aan ceshan karin dareeraha", Kind: AnswerYesNo},
		},
	},
}

// Groups returns the symptom groups in presentation order. Callers must not
// modify the returned slice.
func Groups() []Group {
	return symptomGroups
}

func GroupNames() []string {
	names := make([]string, 0, len(symptomGroups))
	for _, g := range symptomGroups {
		names = append(names, g.Name)
	}
	return names
}

func GroupByName(name string) (Group, bool) {
	for _, g := range symptomGroups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// BuildObservations assembles the sparse observation set for one intake:
// every presence flag defaults to the negative token, selected groups flip
// theirs to affirmative, and follow-up answers are admitted only for
// selected groups. Duration answers given as display phrases are translated
// to model tokens. Unknown group names are rejected.
func BuildObservations(ageGroup string, selected []string, answers map[string]string) (ObservationSet, error) {
	obs := ObservationSet{}
	if age := strings.TrimSpace(ageGroup); age != "" {
		obs["Age_Group"] = age
	}
	for _, g := range symptomGroups {
		obs[g.Flag] = TokenNo
	}

	for _, name := range selected {
		g, ok := GroupByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown symptom group %q", name)
		}
		obs[g.Flag] = TokenYes
		for _, fu := range g.FollowUps {
			raw, ok := answers[fu.Field]
			if !ok {
				continue
			}
			answer := strings.TrimSpace(raw)
			if answer == "" {
				continue
			}
			if fu.Kind == AnswerDuration {
				answer = DurationToken(answer)
			}
			obs[fu.Field] = answer
		}
	}

	return obs, nil
}
