// Package demo holds canned scan results used when the analysis service is
// temporarily overloaded, so the user still gets a usable answer instead of
// an error.
package demo

import "math/rand"

type Medicine struct {
	Name string
	Info string
}

var Medicines = []Medicine{
	{
		Name: "Paracetamol",
		Info: `Medicine Name: Paracetamol (Acetaminophen)

Common Uses:
• Pain relief (headaches, muscle aches)
• Fever reduction
• Cold and flu symptoms

Dosage Form: Tablets, Syrup, Capsules

Precautions:
• Do not exceed 4000mg per day
• Avoid alcohol while taking
• Consult doctor if pregnant

Common Side Effects:
• Rare when used as directed
• Possible liver damage with overdose`,
	},
	{
		Name: "Ibuprofen",
		Info: `Medicine Name: Ibuprofen

Common Uses:
• Anti-inflammatory
• Pain relief
• Fever reduction
• Arthritis symptoms

Dosage Form: Tablets, Capsules, Liquid

Precautions:
• Take with food
• Avoid if allergic to NSAIDs
• Not recommended during pregnancy

Common Side Effects:
• Stomach upset
• Dizziness
• Headache`,
	},
	{
		Name: "Aspirin",
		Info: `Medicine Name: Aspirin

Common Uses:
• Pain relief
• Anti-inflammatory
• Blood thinner
• Heart attack prevention

Dosage Form: Tablets, Chewable tablets

Precautions:
• Not for children under 16
• Avoid if allergic to salicylates
• Take with food

Common Side Effects:
• Stomach irritation
• Increased bleeding risk
• Ringing in ears`,
	},
}

// Random picks one of the canned medicines.
func Random() Medicine {
	return Medicines[rand.Intn(len(Medicines))]
}
