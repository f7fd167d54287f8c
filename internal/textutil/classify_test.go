package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMedicineImage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "medicine keyword present",
			text: "This tablet is used for fever, 500mg dosage",
			want: true,
		},
		{
			name: "non-medicine keywords with no medicine evidence",
			text: "A plate of food and a cold drink sitting on the kitchen counter next to a book",
			want: false,
		},
		{
			name: "medicine evidence beats non-medicine evidence",
			text: "A chocolate bar next to a tablet strip with visible dosage markings on it",
			want: true,
		},
		{
			name: "short ambiguous text",
			text: "A red apple on a wooden table",
			want: false,
		},
		{
			name: "uncertainty phrase",
			text: "The image is too dark and I am unable to determine what the object in this picture might be",
			want: false,
		},
		{
			name: "blurry image phrase",
			text: "This looks like a blurry image so the details of the packaging cannot be made out at all here",
			want: false,
		},
		{
			name: "long ambiguous text gets benefit of the doubt",
			text: "The packing is white with blue lettering and a foil strip is only half visible inside the box",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMedicineImage(tt.text))
		})
	}
}

func TestHasWarning(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "expired", text: "This pack appears to be EXPIRED since last March", want: true},
		{name: "overdose", text: "Risk of overdose if taken with alcohol", want: true},
		{name: "caution", text: "Use with Caution in elderly patients", want: true},
		{name: "no warning language", text: "Used for mild pain and fever in adults", want: false},
		{name: "empty", text: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasWarning(tt.text))
		})
	}
}
