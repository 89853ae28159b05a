package text

// LanguageNames maps ISO 639-1 language codes to human-readable names.
var LanguageNames = map[string]string{
	"bn": "Bangla",
	"en": "English",
	"hi": "Hindi",
	"ur": "Urdu",
	"ar": "Arabic",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
	"ja": "Japanese",
	"zh": "Chinese",
}

// NativeNames holds the endonym shown on viewer tabs.
var NativeNames = map[string]string{
	"bn": "বাংলা",
	"en": "English",
	"hi": "हिन्दी",
	"ur": "اردو",
	"ar": "العربية",
	"de": "Deutsch",
	"fr": "Français",
	"es": "Español",
	"ja": "日本語",
	"zh": "中文",
}

// GetLanguageName returns the human-readable name for a language code.
// If the code is not found, it returns the code itself.
func GetLanguageName(code string) string {
	if name, ok := LanguageNames[code]; ok {
		return name
	}
	return code
}

// GetNativeName returns the endonym for a language code, falling back to GetLanguageName.
func GetNativeName(code string) string {
	if name, ok := NativeNames[code]; ok {
		return name
	}
	return GetLanguageName(code)
}

// IsSupportedLanguage checks if a language code has a known name.
func IsSupportedLanguage(code string) bool {
	_, ok := LanguageNames[code]
	return ok
}
