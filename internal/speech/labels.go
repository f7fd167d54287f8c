package speech

import "golang.org/x/text/language"

// Labels are the localized clause headers spoken ahead of each summary part.
type Labels struct {
	MedicineName   string
	CommonUses     string
	DosageForm     string
	KeyPrecautions string
	SideEffects    string
}

var englishLabels = Labels{
	MedicineName:   "Medicine name:",
	CommonUses:     "Common uses:",
	DosageForm:     "Common dosage form:",
	KeyPrecautions: "Key precautions:",
	SideEffects:    "Common side effects:",
}

var labelSets = map[language.Tag]Labels{
	language.AmericanEnglish: englishLabels,
	language.MustParse("hi-IN"): {
		MedicineName:   "दवा का नाम:",
		CommonUses:     "सामान्य उपयोग:",
		DosageForm:     "सामान्य खुराक का रूप:",
		KeyPrecautions: "मुख्य सावधानियां:",
		SideEffects:    "सामान्य दुष्प्रभाव:",
	},
	language.MustParse("kn-IN"): {
		MedicineName:   "ಔಷಧದ ಹೆಸರು:",
		CommonUses:     "ಸಾಮಾನ್ಯ ಬಳಕೆಗಳು:",
		DosageForm:     "ಸಾಮಾನ್ಯ ಔಷಧ ರೂಪ:",
		KeyPrecautions: "ಮುಖ್ಯ ಎಚ್ಚರಿಕೆಗಳು:",
		SideEffects:    "ಸಾಮಾನ್ಯ ಅಡ್ಡ ಪರಿಣಾಮಗಳು:",
	},
}

func labelsFor(tag language.Tag) Labels {
	if labels, ok := labelSets[tag]; ok {
		return labels
	}
	return englishLabels
}
