package language

// Language describes one supported explanation or native language.
type Language struct {
	Code       string // BCP 47 style code, e.g. "es"
	Name       string // English name shown in logs and config files
	NativeName string // Name in the language itself, shown in selectors
}

// catalog is the fixed, ordered set of supported languages. The order is
// the order the GUI presents them in.
var catalog = []Language{
	{Code: "en", Name: "English", NativeName: "English"},
	{Code: "es", Name: "Spanish", NativeName: "Español"},
	{Code: "fr", Name: "French", NativeName: "Français"},
	{Code: "de", Name: "German", NativeName: "Deutsch"},
	{Code: "it", Name: "Italian", NativeName: "Italiano"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português"},
	{Code: "nl", Name: "Dutch", NativeName: "Nederlands"},
	{Code: "ru", Name: "Russian", NativeName: "Русский"},
	{Code: "bg", Name: "Bulgarian", NativeName: "Български"},
	{Code: "ja", Name: "Japanese", NativeName: "日本語"},
	{Code: "ko", Name: "Korean", NativeName: "한국어"},
	{Code: "zh", Name: "Chinese", NativeName: "中文"},
}

// All returns the catalog in presentation order.
func All() []Language {
	out := make([]Language, len(catalog))
	copy(out, catalog)
	return out
}

// ByCode looks up a language by its code.
func ByCode(code string) (Language, bool) {
	for _, l := range catalog {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// ByName looks up a language by its English name. Fyne select widgets
// report the selected option string, which is the English name.
func ByName(name string) (Language, bool) {
	for _, l := range catalog {
		if l.Name == name {
			return l, true
		}
	}
	return Language{}, false
}

// Names returns the English names in presentation order, for select widgets.
func Names() []string {
	names := make([]string, len(catalog))
	for i, l := range catalog {
		names[i] = l.Name
	}
	return names
}

// Default returns the language used when no configuration is present.
func Default() Language {
	return catalog[0]
}
