package utils

import "golang.org/x/text/language"

// Languages the analysis prompts and speech labels are available in.
// English is first so it is the matcher's fallback.
var supportedLanguages = []language.Tag{
	language.AmericanEnglish,    // en-US
	language.MustParse("hi-IN"), // Hindi
	language.MustParse("kn-IN"), // Kannada
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// ResolveLanguage maps an arbitrary BCP-47 tag to one of the supported
// languages. Unrecognized or empty tags resolve to en-US.
func ResolveLanguage(tag string) language.Tag {
	if tag == "" {
		return supportedLanguages[0]
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return supportedLanguages[0]
	}

	_, index, confidence := languageMatcher.Match(parsed)
	if confidence == language.No {
		return supportedLanguages[0]
	}

	return supportedLanguages[index]
}
