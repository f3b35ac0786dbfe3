package triage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Catalog holds the canned recommendation texts, keyed by the exact decoded
// label. Two outpatient label spellings circulate in the trained model's
// classes ("eh"/"ah"); both are kept as independent keys with identical text
// so every decoded label still resolves by exact match.
type Catalog struct {
	Tips     map[string]string `yaml:"tips" json:"tips"`
	Fallback string            `yaml:"fallback" json:"fallback"`
	Notice   string            `yaml:"notice" json:"notice"`
}

// LoadCatalog reads a tips catalog artifact. Any failure degrades to the
// built-in defaults; the error is returned alongside them so callers can log
// the substitution.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return DefaultCatalog(), err
	}
	var cat Catalog
	if err := yaml.Unmarshal(content, &cat); err != nil {
		return DefaultCatalog(), err
	}
	if len(cat.Tips) == 0 {
		return DefaultCatalog(), fmt.Errorf("tips catalog empty")
	}
	if cat.Fallback == "" {
		cat.Fallback = DefaultCatalog().Fallback
	}
	if cat.Notice == "" {
		cat.Notice = DefaultCatalog().Notice
	}
	return cat, nil
}

// Recommendation returns the tip for the exact label, or the generic
// fallback when the label is not in the table.
func (c Catalog) Recommendation(label string) string {
	if tip, ok := c.Tips[label]; ok && tip != "" {
		return tip
	}
	return c.Fallback
}

func DefaultCatalog() Catalog {
	return Catalog{
		Tips: map[string]string{
			"Xaalad fudud (Daryeel guri)":           "Ku naso guriga, cab biyo badan, cun cunto fudud, qaado xanuun baabi'iye ama qandho dajiye haddii aad u baahantahay, la soco calaamadahaaga 24 saac, haddii ay kasii daraan la xiriir xarun caafimaad.",
			"Xaalad dhax dhaxaad eh (Bukaan socod)": "Booqo xarun caafimaad 24 saacadood gudahood si lagu qiimeeyo, qaado warqadaha daawooyinkii hore haddii ay jiraan, cab biyo badan.",
			"Xaalad dhax dhaxaad ah (Bukaan socod)": "Booqo xarun caafimaad 24 saacadood gudahood si lagu qiimeeyo, qaado warqadaha daawooyinkii hore haddii ay jiraan, cab biyo badan.",
			"Xaalad deg deg ah":                     "Si deg deg ah u gaar isbitaalka, ha isku dayin daaweynta guriga, haddii ay suurtagal tahay raac qof kugu weheliya, qaado warqadaha daawooyinkii hore haddii ay jiraan.",
		},
		Fallback: "La-talin guud: haddii aad ka welwelsan tahay xaaladdaada, la xiriir xarun caafimaad.",
		Notice: "Farriin gaar ah: Tan waa qiimeyn guud oo kaa caawinaysa inaad fahanto xaaladdaada iyo waxa xiga. " +
			"Haddii aad ka welwelsan tahay xaaladdaada, la xiriir dhakhtar.",
	}
}
