package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want language.Tag
	}{
		{"empty defaults to english", "", language.AmericanEnglish},
		{"exact english", "en-US", language.AmericanEnglish},
		{"base english", "en", language.AmericanEnglish},
		{"hindi", "hi-IN", language.MustParse("hi-IN")},
		{"base hindi", "hi", language.MustParse("hi-IN")},
		{"kannada", "kn-IN", language.MustParse("kn-IN")},
		{"unsupported falls back", "fr-FR", language.AmericanEnglish},
		{"garbage falls back", "not a tag!", language.AmericanEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLanguage(tt.tag))
		})
	}
}
