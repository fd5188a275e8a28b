package rx

import "vaidya/internal/intake"

type treatment struct {
	Medications  []string
	Instructions []string
	FollowUp     string
}

// treatments maps lowercased condition labels to per-language treatment
// blocks. Conditions absent here get fallbackTreatment.
var treatments = map[string]map[intake.Language]treatment{
	"dandruff": {
		intake.English: {
			Medications:  []string{"Ketoconazole 2% shampoo", "Selenium sulfide 2.5% shampoo"},
			Instructions: []string{"Use medicated shampoo twice weekly.", "Leave on scalp for 5-10 minutes."},
			FollowUp:     "Follow up in 2 weeks if condition persists.",
		},
		intake.Hindi: {
			Medications:  []string{"कीटोकोनाज़ोल 2% शैम्पू", "सेलेनियम सल्फाइड 2.5% शैम्पू"},
			Instructions: []string{"सप्ताह में दो बार मेडिकेटेड शैम्पू का उपयोग करें।", "5-10 मिनट तक स्कैल्प पर लगा रहने दें।"},
			FollowUp:     "यदि स्थिति बनी रहती है तो 2 सप्ताह में फॉलो-अप करें।",
		},
		intake.Marathi: {
			Medications:  []string{"कीटोकोनाझोल २% शाम्पू", "सेलेनियम सल्फाइड २.५% शाम्पू"},
			Instructions: []string{"आठवड्यातून दोनदा औषधी शाम्पू वापरावा.", "५-१० मिनिटे स्कॅल्पवर ठेवा."},
			FollowUp:     "स्थिती कायम राहिल्यास २ आठवड्यांनी पुन्हा संपर्क साधा.",
		},
	},
}

// fallbackTreatment is returned for any condition without a table entry.
var fallbackTreatment = map[intake.Language]treatment{
	intake.English: {
		Medications:  []string{"No specific medication found for this diagnosis."},
		Instructions: []string{"Please consult a healthcare professional for a personalized treatment plan."},
		FollowUp:     "Follow up with a doctor as soon as possible.",
	},
	intake.Hindi: {
		Medications:  []string{"इस निदान के लिए कोई विशिष्ट दवा नहीं मिली।"},
		Instructions: []string{"व्यक्तिगत उपचार योजना के लिए कृपया किसी स्वास्थ्य देखभाल पेशेवर से परामर्श लें।"},
		FollowUp:     "यथाशीघ्र डॉक्टर से संपर्क करें।",
	},
	intake.Marathi: {
		Medications:  []string{"या निदानासाठी कोणतेही विशिष्ट औषध सापडले नाही."},
		Instructions: []string{"वैयक्तिकृत उपचार योजनेसाठी कृपया आरोग्यसेवा व्यावसायिकाचा सल्ला घ्या."},
		FollowUp:     "शक्य तितक्या लवकर डॉक्टरांशी संपर्क साधा.",
	},
}

// templates renders the final prescription per language.
var templates = map[intake.Language]string{
	intake.English: `PRESCRIPTION
Date: {date}
Patient: [Patient Name]
Diagnosis: {diagnosis}

Medications:
{medications}

Instructions:
{instructions}

Follow-up: {follow_up}

Doctor: Vaidya AI`,
	intake.Hindi: `नुस्खा
दिनांक: {date}
रोगी: [रोगी का नाम]
निदान: {diagnosis}

दवाइयां:
{medications}

निर्देश:
{instructions}

फॉलो-अप: {follow_up}

डॉक्टर: Vaidya AI`,
	intake.Marathi: `औषधोपचार
दिनांक: {date}
रुग्ण: [रुग्णाचे नाव]
निदान: {diagnosis}

औषधे:
{medications}

सूचना:
{instructions}

पुन्हा तपासणी: {follow_up}

डॉक्टर: Vaidya AI`,
}
