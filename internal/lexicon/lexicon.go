// Package lexicon holds the static symptom vocabulary: canonical symptom ids,
// the trigger phrases used for free-text detection, and short human-readable
// descriptions for display.
package lexicon

import "strings"

// #region entries

// Entry maps one canonical symptom id to its trigger phrases. Phrases are
// matched case-insensitively as substrings of the utterance.
type Entry struct {
	ID       string
	Triggers []string
}

// entries is the fixed detection vocabulary. Order is stable so extraction
// results are deterministic.
var entries = []Entry{
	{"itching", []string{"itch", "itchy", "itching", "scratch"}},
	{"skin_rash", []string{"rash", "red spots", "skin eruption", "red skin"}},
	{"nodal_skin_eruptions", []string{"skin lumps", "skin bumps", "nodules", "skin eruptions"}},
	{"continuous_sneezing", []string{"sneezing", "sneeze", "allergic reaction"}},
	{"shivering", []string{"shiver", "shaking", "trembling", "chills"}},
	{"chills", []string{"cold", "chills", "shaking", "cold feeling"}},
	{"joint_pain", []string{"joint pain", "sore joints", "painful joints", "arthritis"}},
	{"stomach_pain", []string{"stomach pain", "abdominal pain", "tummy ache", "belly pain"}},
	{"acidity", []string{"heartburn", "acid reflux", "sour taste", "acidity"}},
	{"vomiting", []string{"vomit", "throw up", "nausea", "sick"}},
	{"fatigue", []string{"tired", "exhausted", "fatigue", "no energy", "low energy", "weakness"}},
	{"anxiety", []string{"anxious", "worried", "panic", "fear"}},
	{"mood_swings", []string{"mood changes", "emotional", "irritable", "mood swings"}},
	{"weight_loss", []string{"lost weight", "weight loss", "getting thinner", "losing weight"}},
	{"restlessness", []string{"can't sit still", "restless", "agitated", "fidgety"}},
	{"lethargy", []string{"sluggish", "slow", "lethargic", "no energy"}},
	{"patches_in_throat", []string{"throat patches", "white spots in throat", "sore throat"}},
	{"cough", []string{"coughing", "cough", "hacking"}},
	{"high_fever", []string{"high fever", "high temperature", "feeling hot", "overheated"}},
	{"breathlessness", []string{"short of breath", "can't breathe", "breathing difficulty", "wheezing"}},
	{"neck_pain", []string{"neck pain", "sore neck", "stiff neck", "neck ache"}},
	{"back_pain", []string{"back pain", "sore back", "back ache", "back hurts", "back problem"}},
}

// #endregion entries

// #region matching

// Entries returns the full detection vocabulary.
func Entries() []Entry {
	return entries
}

// Matches reports whether any of the entry's trigger phrases occurs in the
// lowercased utterance.
func (e Entry) Matches(lower string) bool {
	for _, trigger := range e.Triggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

// #endregion matching

// #region descriptions

// descriptions covers every id in the detection vocabulary plus symptoms that
// exist only as feature columns (selectable in checklist front ends).
var descriptions = map[string]string{
	"itching":              "Itching of the skin",
	"skin_rash":            "Visible skin rash",
	"nodal_skin_eruptions": "Nodular skin eruptions",
	"continuous_sneezing":  "Persistent sneezing",
	"shivering":            "Involuntary trembling",
	"chills":               "Feeling of coldness",
	"joint_pain":           "Pain in the joints",
	"stomach_pain":         "Abdominal pain",
	"acidity":              "Excessive stomach acid",
	"vomiting":             "Forcing contents from stomach",
	"fatigue":              "Extreme tiredness",
	"anxiety":              "Feeling of worry or nervousness",
	"mood_swings":          "Rapid changes in emotion",
	"weight_loss":          "Decrease in body weight",
	"restlessness":         "Inability to rest or relax",
	"lethargy":             "Lack of energy or enthusiasm",
	"patches_in_throat":    "Visible patches in throat",
	"cough":                "Sudden expulsion of air",
	"high_fever":           "Body temperature well above normal",
	"mild_fever":           "Slightly elevated body temperature",
	"breathlessness":       "Difficulty breathing",
	"neck_pain":            "Pain in the neck",
	"back_pain":            "Pain in the back",
	"headache":             "Pain in the head",
	"chest_pain":           "Pain in the chest",
	"dizziness":            "Feeling lightheaded or unsteady",
	"nausea":               "Feeling of sickness with an inclination to vomit",
	"muscle_weakness":      "Reduced strength in muscles",
	"stiff_neck":           "Difficulty moving the neck",
	"swelling_joints":      "Inflammation of the joints",
	"obesity":              "Excessive body weight",
	"depression":           "Persistent feeling of sadness",
	"diarrhoea":            "Frequent loose bowel movements",
	"sweating":             "Excessive perspiration",
}

// Describe returns the display description for a symptom id.
func Describe(id string) string {
	if d, ok := descriptions[id]; ok {
		return d
	}
	return "Description not available"
}

// Display converts a canonical id to human-readable form, "back_pain"
// becoming "back pain".
func Display(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}

// #endregion descriptions
