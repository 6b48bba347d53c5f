package knowledge

// #region disease-info

// seedInfo holds the static one-paragraph description per disease label.
var seedInfo = map[string]string{
	"Fungal infection":     "A fungal infection caused by fungi that commonly affects the skin, hair, and nails.",
	"Allergy":              "An immune system response to a substance that most people tolerate well.",
	"GERD":                 "Gastroesophageal reflux disease, a digestive disorder that affects the lower esophageal sphincter.",
	"Chronic cholestasis":  "A condition where bile flow from the liver is reduced or blocked.",
	"Drug Reaction":        "An adverse reaction to medication that may present as a rash or other symptoms.",
	"Peptic ulcer disease": "A condition where open sores develop in the lining of the stomach or upper part of the small intestine.",
	"AIDS":                 "Acquired immunodeficiency syndrome, a chronic condition caused by HIV that damages the immune system.",
	"Diabetes":             "A group of diseases that affect how your body uses blood sugar (glucose).",
	"Gastroenteritis":      "Inflammation of the lining of the intestines caused by a virus, bacteria, or parasites.",
	"Bronchial Asthma":     "A condition where airways narrow and swell, producing extra mucus and making it difficult to breathe.",
	"Hypertension":         "High blood pressure that can lead to serious health problems.",
	"Migraine":             "A headache disorder characterized by recurrent headaches that are moderate to severe.",
	"Cervical spondylosis": "Age-related wear and tear affecting the spinal disks in your neck.",
	"Paralysis":            "Loss of muscle function in part of your body, often caused by damage to the nervous system.",
	"Jaundice":             "Yellowing of the skin and whites of the eyes caused by an accumulation of bilirubin in the blood.",
	"Malaria":              "A disease caused by a parasite, transmitted by the bite of infected mosquitoes.",
	"Chicken pox":          "A highly contagious viral infection causing an itchy, blister-like rash.",
	"Dengue":               "A mosquito-borne viral disease causing fever and flu-like symptoms.",
	"Typhoid":              "A bacterial infection caused by Salmonella typhi, spread through contaminated food and water.",
	"Common Cold":          "A viral infectious disease of the upper respiratory tract affecting the nose, throat, and sinuses.",
	"Pneumonia":            "Infection that inflames air sacs in one or both lungs, which may fill with fluid.",
	"Anxiety":              "A feeling of worry, nervousness, or unease about something with an uncertain outcome.",
	"Psoriasis":            "A skin condition causing red, flaky, crusty patches of skin covered with silvery scales.",
	"Arthritis":            "Inflammation of one or more joints, causing pain and stiffness that can worsen with age.",
}

// #endregion disease-info

// #region guidance-seed

type seedGuidanceEntry struct {
	Disease string
	Section Section
	Items   []string
}

// seedGuidance covers the diseases the curated knowledge base ships advice
// for. Everything else goes through the generative fallback.
var seedGuidance = []seedGuidanceEntry{
	{"Common Cold", SectionLifestyle, []string{
		"Get plenty of rest to help your body fight the infection",
		"Stay home to avoid spreading the virus to others",
		"Sleep with your head elevated to help relieve congestion",
		"Drink plenty of fluids like water, juice, or clear broth",
		"Use a humidifier to add moisture to the air and help ease congestion",
		"Gargle with salt water to soothe a sore throat",
	}},
	{"Common Cold", SectionDiet, []string{
		"Warm broths and soups (especially chicken soup) to ease congestion and provide hydration",
		"Honey to soothe cough (not for children under 1 year)",
		"Vitamin C-rich foods like citrus fruits, berries, and leafy greens",
		"Ginger tea with honey to help relieve congestion and soothe sore throat",
		"Avoid alcohol and caffeine, which contribute to dehydration",
	}},
	{"Common Cold", SectionMedical, []string{
		"Decongestants like pseudoephedrine to reduce nasal congestion",
		"Pain relievers such as acetaminophen or ibuprofen to reduce fever and relieve pain",
		"See a doctor for fever above 38.5°C lasting more than three days",
		"See a doctor if symptoms worsen after 7-10 days or don't improve with home treatment",
	}},
	{"Common Cold", SectionPrevention, []string{
		"Wash hands frequently with soap and water for at least 20 seconds",
		"Avoid close contact with people who are sick",
		"Don't touch your face, especially your eyes, nose, and mouth",
		"Clean and disinfect frequently touched surfaces",
	}},

	{"Diabetes", SectionLifestyle, []string{
		"Aim for at least 150 minutes of moderate-intensity exercise per week",
		"Include both aerobic activities and strength training",
		"Check blood sugar levels regularly as advised by your healthcare provider",
		"Monitor blood pressure and cholesterol regularly",
		"Check your feet daily for cuts, blisters, or swelling",
	}},
	{"Diabetes", SectionDiet, []string{
		"Choose high-fiber, slow-release carbohydrates like whole grains and legumes",
		"Fill half your plate with non-starchy vegetables",
		"Limit sugary drinks, sweets, and refined carbohydrates",
		"Keep meal times and portion sizes consistent from day to day",
	}},
	{"Diabetes", SectionMedical, []string{
		"Take prescribed medications or insulin exactly as directed",
		"Attend regular check-ups including eye and kidney screening",
		"Know the signs of low blood sugar and how to treat it quickly",
		"Seek urgent care for very high readings with nausea or confusion",
	}},
	{"Diabetes", SectionPrevention, []string{
		"Maintain a healthy body weight",
		"Stay physically active most days of the week",
		"Avoid tobacco and limit alcohol",
		"Get screened regularly if diabetes runs in your family",
	}},

	{"Hypertension", SectionLifestyle, []string{
		"Exercise regularly; even brisk walking helps lower blood pressure",
		"Manage stress with relaxation techniques and adequate sleep",
		"Monitor your blood pressure at home and keep a log",
	}},
	{"Hypertension", SectionDiet, []string{
		"Reduce sodium intake; avoid processed and fast foods",
		"Eat plenty of fruits, vegetables, and low-fat dairy",
		"Limit alcohol and caffeine",
	}},
	{"Hypertension", SectionMedical, []string{
		"Take blood pressure medication consistently, even when you feel fine",
		"See your doctor regularly to review readings and adjust treatment",
		"Seek immediate care for readings above 180/120 with symptoms",
	}},
	{"Hypertension", SectionPrevention, []string{
		"Keep a healthy weight and stay active",
		"Limit salt from early adulthood onwards",
		"Avoid smoking and manage long-term stress",
	}},
}

// #endregion guidance-seed
