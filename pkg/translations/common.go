package translations

// Common UI strings that may not be present in any module. They are applied
// after flattening and always override module-provided values for the same
// keys.
var commonStrings = map[string]map[Language]string{
	"general_language_toggle_tooltip": {
		English: "Toggle to switch between available languages",
		Hausa:   "Danna don canza harshe",
	},
	"general_language_changed": {
		English: "Language updated successfully",
		Hausa:   "An sabunta harshe cikin nasara",
	},
	"general_loading": {
		English: "Loading...",
		Hausa:   "Ana loda...",
	},
	"general_error": {
		English: "Error",
		Hausa:   "Kuskure",
	},
	"general_success": {
		English: "Success",
		Hausa:   "Nasara",
	},
}

// CommonTranslations returns the fixed overlay strings for one language.
func CommonTranslations(lang Language) map[string]string {
	out := make(map[string]string, len(commonStrings))
	for key, values := range commonStrings {
		out[key] = values[lang]
	}
	return out
}
