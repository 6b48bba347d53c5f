package dataset

// #region seed-columns

// seedColumns is the default feature space: every symptom the lexicon can
// detect plus the checklist-only symptoms. Column order defines vector layout.
var seedColumns = []string{
	"itching", "skin_rash", "nodal_skin_eruptions", "continuous_sneezing",
	"shivering", "chills", "joint_pain", "stomach_pain", "acidity",
	"vomiting", "fatigue", "anxiety", "mood_swings", "weight_loss",
	"restlessness", "lethargy", "patches_in_throat", "cough", "high_fever",
	"mild_fever", "breathlessness", "neck_pain", "back_pain", "headache",
	"chest_pain", "dizziness", "nausea", "muscle_weakness", "stiff_neck",
	"swelling_joints", "obesity", "depression", "diarrhoea", "sweating",
}

// #endregion seed-columns

// #region seed-cases

// SeedCase is one labelled training example.
type SeedCase struct {
	Prognosis string
	Symptoms  []string
}

// seedCases is the bundled fallback dataset used when the database holds no
// training data yet. Two presentations per condition keep the class priors
// flat while giving the classifier some within-class variation.
var seedCases = []SeedCase{
	{"Fungal infection", []string{"itching", "skin_rash", "nodal_skin_eruptions"}},
	{"Fungal infection", []string{"itching", "skin_rash", "nodal_skin_eruptions", "patches_in_throat"}},
	{"Allergy", []string{"continuous_sneezing", "shivering", "chills", "itching"}},
	{"Allergy", []string{"continuous_sneezing", "chills", "skin_rash"}},
	{"GERD", []string{"acidity", "stomach_pain", "vomiting", "cough"}},
	{"GERD", []string{"acidity", "stomach_pain", "chest_pain"}},
	{"Peptic ulcer disease", []string{"stomach_pain", "vomiting", "weight_loss"}},
	{"Peptic ulcer disease", []string{"stomach_pain", "acidity", "vomiting", "nausea"}},
	{"Diabetes", []string{"fatigue", "weight_loss", "restlessness", "lethargy"}},
	{"Diabetes", []string{"fatigue", "weight_loss", "lethargy", "obesity"}},
	{"Gastroenteritis", []string{"vomiting", "diarrhoea", "mild_fever", "stomach_pain"}},
	{"Gastroenteritis", []string{"vomiting", "diarrhoea", "stomach_pain", "nausea"}},
	{"Bronchial Asthma", []string{"breathlessness", "cough", "chest_pain", "fatigue"}},
	{"Bronchial Asthma", []string{"breathlessness", "cough", "anxiety"}},
	{"Hypertension", []string{"headache", "chest_pain", "dizziness", "anxiety"}},
	{"Hypertension", []string{"headache", "dizziness", "obesity"}},
	{"Migraine", []string{"headache", "nausea", "dizziness"}},
	{"Migraine", []string{"headache", "nausea", "dizziness", "anxiety", "mood_swings"}},
	{"Cervical spondylosis", []string{"neck_pain", "back_pain", "dizziness", "stiff_neck"}},
	{"Cervical spondylosis", []string{"neck_pain", "stiff_neck", "muscle_weakness"}},
	{"Jaundice", []string{"itching", "vomiting", "fatigue", "weight_loss"}},
	{"Jaundice", []string{"itching", "fatigue", "mild_fever", "weight_loss"}},
	{"Malaria", []string{"chills", "shivering", "high_fever", "vomiting", "headache", "sweating"}},
	{"Malaria", []string{"chills", "high_fever", "headache", "sweating", "nausea"}},
	{"Chicken pox", []string{"itching", "skin_rash", "high_fever", "fatigue", "headache"}},
	{"Chicken pox", []string{"itching", "skin_rash", "mild_fever", "lethargy"}},
	{"Dengue", []string{"high_fever", "headache", "joint_pain", "nausea", "skin_rash", "fatigue"}},
	{"Dengue", []string{"high_fever", "headache", "joint_pain", "back_pain", "fatigue"}},
	{"Typhoid", []string{"high_fever", "headache", "nausea", "fatigue", "stomach_pain", "diarrhoea"}},
	{"Typhoid", []string{"high_fever", "fatigue", "stomach_pain", "diarrhoea", "chills"}},
	{"Common Cold", []string{"continuous_sneezing", "chills", "cough", "mild_fever", "fatigue", "headache"}},
	{"Common Cold", []string{"continuous_sneezing", "cough", "mild_fever", "patches_in_throat"}},
	{"Pneumonia", []string{"high_fever", "cough", "breathlessness", "chest_pain", "fatigue", "chills"}},
	{"Pneumonia", []string{"high_fever", "cough", "breathlessness", "sweating", "fatigue"}},
	{"Anxiety", []string{"anxiety", "restlessness", "mood_swings", "fatigue"}},
	{"Anxiety", []string{"anxiety", "restlessness", "breathlessness", "sweating"}},
	{"Psoriasis", []string{"skin_rash", "itching", "joint_pain"}},
	{"Psoriasis", []string{"skin_rash", "itching", "joint_pain", "swelling_joints"}},
	{"Arthritis", []string{"joint_pain", "swelling_joints", "muscle_weakness", "stiff_neck"}},
	{"Arthritis", []string{"joint_pain", "swelling_joints", "stiff_neck", "fatigue"}},
}

// #endregion seed-cases
