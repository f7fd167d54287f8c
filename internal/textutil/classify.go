package textutil

import "strings"

var medicineKeywords = []string{
	"medicine", "medication", "drug", "tablet", "capsule", "pill", "syrup",
	"injection", "dose", "dosage", "prescription", "pharmaceutical", "antibiotic",
	"painkiller", "supplement", "vitamin", "treatment", "therapy", "mg", "ml",
	"expiry", "batch", "manufacturer", "active ingredient", "side effect",
}

var nonMedicineKeywords = []string{
	"food", "drink", "beverage", "snack", "candy", "chocolate", "fruit",
	"vegetable", "book", "paper", "document", "phone", "computer", "car",
	"building", "person", "animal", "plant", "flower", "tree", "furniture",
	"clothing", "toy", "game", "music", "movie", "art", "painting",
}

var uncertaintyPhrases = []string{
	"cannot identify",
	"unable to determine",
	"not clear",
	"blurry image",
}

var warningKeywords = []string{"expired", "dangerous", "overdose", "warning", "caution"}

// IsMedicineImage decides whether analysis text actually describes a medicine.
// Medicine evidence takes precedence over non-medicine evidence; very short or
// explicitly uncertain analyses are rejected; otherwise the text gets the
// benefit of the doubt.
func IsMedicineImage(analysisText string) bool {
	lower := strings.ToLower(analysisText)

	hasMedicine := containsAny(lower, medicineKeywords)
	hasNonMedicine := containsAny(lower, nonMedicineKeywords)

	if hasNonMedicine && !hasMedicine {
		return false
	}
	if hasMedicine {
		return true
	}

	if len(lower) < 50 || containsAny(lower, uncertaintyPhrases) {
		return false
	}

	return true
}

// HasWarning reports whether the analysis text contains safety-warning
// language the user should be alerted to.
func HasWarning(analysisText string) bool {
	return containsAny(strings.ToLower(analysisText), warningKeywords)
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
