// Package i18n holds the localized string tables for the two supported
// languages. Lookups fall back to the key itself so a missing entry is
// visible in the UI instead of crashing it.
package i18n

// Language selects one of the supported UI languages.
type Language string

const (
	English   Language = "en"
	Malayalam Language = "ml"
)

// Parse maps a user-supplied language code to a Language.
func Parse(s string) (Language, bool) {
	switch s {
	case "en", "english":
		return English, true
	case "ml", "malayalam":
		return Malayalam, true
	default:
		return "", false
	}
}

// Languages lists the supported languages in toggle order.
func Languages() []Language {
	return []Language{English, Malayalam}
}

// T returns the translation for key in lang. Unmapped keys are returned
// verbatim.
func T(lang Language, key string) string {
	if table, ok := tables[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	return key
}

var tables = map[Language]map[string]string{
	English: {
		"app.name":    "Krishi Sakhi",
		"app.tagline": "Your AI-powered farming companion",

		"nav.advisory":  "Advisory",
		"nav.profiles":  "Profiles",
		"nav.queries":   "Queries",
		"nav.knowledge": "Knowledge",

		"features.advisory":  "Advisory Section",
		"features.profile":   "Profile Section",
		"features.queries":   "Queries Section",
		"features.knowledge": "Knowledge Engine",

		"profile.create":         "Create New Profile",
		"profile.edit":           "Edit Farm Profile",
		"profile.farmer.details": "Farmer Details",
		"profile.farm.details":   "Farm Details",
		"profile.empty.title":    "No Profiles Created Yet",
		"profile.empty.body":     "Create your first farm profile to get personalized recommendations.",
		"profile.field.name":       "Name",
		"profile.field.age":        "Age",
		"profile.field.contact":    "Contact",
		"profile.field.location":   "Location",
		"profile.field.landsize":   "Land Size",
		"profile.field.croptype":   "Crop Type",
		"profile.field.soiltype":   "Soil Type",
		"profile.field.irrigation": "Irrigation Method",

		"knowledge.search.placeholder": "Search for farming topics, crops, or techniques...",
		"knowledge.category.all":        "All",
		"knowledge.category.crops":      "Crop Calendar",
		"knowledge.category.pests":      "Pest Management",
		"knowledge.category.irrigation": "Water Management",

		"advisory.stats.active":    "Active Advisories",
		"advisory.stats.completed": "Completed Actions",
		"advisory.stats.pending":   "Pending Tasks",

		"chatbot.placeholder": "Ask me anything about farming...",
		"chat.greeting":       "Hello! I'm your Krishi Sakhi AI assistant. How can I help you with your farming today?",
		"chat.your.crops":     "your crops",

		"chat.reply.weather":    "Weather update: light rain is expected over the next 48 hours. Avoid spraying today and plan irrigation for after the showers pass.",
		"chat.reply.fertilizer": "Fertilizer advice: this growth stage responds well to a nitrogen-rich application. Split the dose and water the field lightly afterwards.",
		"chat.reply.pest":       "Pest alert: brown planthopper activity has been reported in nearby fields. Inspect the underside of leaves and consider a neem-based spray early.",
		"chat.reply.market":     "Market prices: rice is trading at ₹2,850 per quintal at the Kochi mandi, up 3% this week. A good window to plan your sale.",
		"chat.reply.generic":    "Thank you for your question! Based on your query about %s, I recommend checking soil moisture levels and considering organic fertilizers for healthier %s.",

		"chat.suggest.irrigation": "Irrigation tips",
		"chat.suggest.protection": "Crop protection",
		"chat.suggest.drainage":   "Field drainage",
		"chat.suggest.organic":    "Organic options",
		"chat.suggest.dosage":     "Dosage guide",
		"chat.suggest.schedule":   "Application schedule",
		"chat.suggest.identify":   "Identify the pest",
		"chat.suggest.neem":       "Neem spray recipe",
		"chat.suggest.traps":      "Set pest traps",
		"chat.suggest.mandi":      "Today's mandi prices",
		"chat.suggest.markets":    "Nearby markets",
		"chat.suggest.trends":     "Price trends",
		"chat.suggest.weather":    "Weather forecast",
		"chat.suggest.fertilizer": "Fertilizer advice",
		"chat.suggest.pests":      "Pest control",
	},
	Malayalam: {
		"app.name":    "കൃഷി സഖി",
		"app.tagline": "നിങ്ങളുടെ AI-പവേർഡ് കാർഷിക സഹായി",

		"nav.advisory":  "ഉപദേശം",
		"nav.profiles":  "പ്രൊഫൈലുകൾ",
		"nav.queries":   "ചോദ്യങ്ങൾ",
		"nav.knowledge": "വിജ്ഞാനം",

		"features.advisory":  "ഉപദേശ വിഭാഗം",
		"features.profile":   "പ്രൊഫൈൽ വിഭാഗം",
		"features.queries":   "ചോദ്യങ്ങൾ",
		"features.knowledge": "വിജ്ഞാന കേന്ദ്രം",

		"profile.create":         "പുതിയ പ്രൊഫൈൽ സൃഷ്ടിക്കുക",
		"profile.edit":           "പ്രൊഫൈൽ തിരുത്തുക",
		"profile.farmer.details": "കർഷക വിവരങ്ങൾ",
		"profile.farm.details":   "കൃഷിയിടം വിവരങ്ങൾ",
		"profile.empty.title":    "പ്രൊഫൈലുകൾ ഒന്നും ഇല്ല",
		"profile.empty.body":     "വ്യക്തിഗത ശുപാർശകൾക്കായി ആദ്യ പ്രൊഫൈൽ സൃഷ്ടിക്കൂ.",
		"profile.field.name":       "പേര്",
		"profile.field.age":        "വയസ്സ്",
		"profile.field.contact":    "ഫോൺ നമ്പർ",
		"profile.field.location":   "സ്ഥലം",
		"profile.field.landsize":   "ഭൂവിസ്തൃതി",
		"profile.field.croptype":   "വിള",
		"profile.field.soiltype":   "മണ്ണ്",
		"profile.field.irrigation": "ജലസേചന രീതി",

		"knowledge.search.placeholder": "വിളകൾ, കൃഷി രീതികൾ തിരയൂ...",
		"knowledge.category.all":        "എല്ലാം",
		"knowledge.category.crops":      "വിള കലണ്ടർ",
		"knowledge.category.pests":      "കീട നിയന്ത്രണം",
		"knowledge.category.irrigation": "ജല മാനേജ്മെന്റ്",

		"advisory.stats.active":    "സജീവ ഉപദേശങ്ങൾ",
		"advisory.stats.completed": "പൂർത്തിയായവ",
		"advisory.stats.pending":   "ബാക്കിയുള്ളവ",

		"chatbot.placeholder": "കൃഷിയെ കുറിച്ച് എന്തും ചോദിക്കൂ...",
		"chat.greeting":       "നമസ്കാരം! ഞാൻ നിങ്ങളുടെ കൃഷി സഖി AI സഹായി. ഇന്ന് കൃഷിയിൽ എങ്ങനെ സഹായിക്കാം?",
		"chat.your.crops":     "നിങ്ങളുടെ വിളകൾ",

		"chat.reply.weather":    "കാലാവസ്ഥ: അടുത്ത 48 മണിക്കൂറിൽ നേരിയ മഴയ്ക്ക് സാധ്യത. ഇന്ന് സ്പ്രേ ഒഴിവാക്കി, മഴയ്ക്ക് ശേഷം ജലസേചനം ആസൂത്രണം ചെയ്യൂ.",
		"chat.reply.fertilizer": "വള നിർദേശം: ഈ വളർച്ചാ ഘട്ടത്തിൽ നൈട്രജൻ കൂടുതലുള്ള വളം നൽകുക. അളവ് ഭാഗങ്ങളായി നൽകി ശേഷം നേരിയ നനവ് നൽകൂ.",
		"chat.reply.pest":       "കീട മുന്നറിയിപ്പ്: സമീപ പാടങ്ങളിൽ മുഞ്ഞയുടെ സാന്നിധ്യം റിപ്പോർട്ട് ചെയ്തിട്ടുണ്ട്. ഇലകളുടെ അടിഭാഗം പരിശോധിച്ച് വേപ്പെണ്ണ സ്പ്രേ പരിഗണിക്കൂ.",
		"chat.reply.market":     "വിപണി വില: കൊച്ചി മാർക്കറ്റിൽ അരി ക്വിന്റലിന് ₹2,850; ഈ ആഴ്ച 3% ഉയർച്ച. വിൽപന ആസൂത്രണം ചെയ്യാൻ നല്ല സമയം.",
		"chat.reply.generic":    "നിങ്ങളുടെ ചോദ്യത്തിന് നന്ദി! %s എന്നതിനെക്കുറിച്ചുള്ള ചോദ്യം പരിഗണിച്ച്, മണ്ണിലെ ഈർപ്പം പരിശോധിക്കാനും %s-ന് ജൈവ വളങ്ങൾ ഉപയോഗിക്കാനും ശുപാർശ ചെയ്യുന്നു.",

		"chat.suggest.irrigation": "ജലസേചന നുറുങ്ങുകൾ",
		"chat.suggest.protection": "വിള സംരക്ഷണം",
		"chat.suggest.drainage":   "പാടത്തിലെ നീർവാഴ്ച",
		"chat.suggest.organic":    "ജൈവ മാർഗങ്ങൾ",
		"chat.suggest.dosage":     "അളവ് നിർദേശം",
		"chat.suggest.schedule":   "പ്രയോഗ സമയക്രമം",
		"chat.suggest.identify":   "കീടത്തെ തിരിച്ചറിയൂ",
		"chat.suggest.neem":       "വേപ്പെണ്ണ സ്പ്രേ",
		"chat.suggest.traps":      "കീടക്കെണികൾ വയ്ക്കൂ",
		"chat.suggest.mandi":      "ഇന്നത്തെ വിപണി വില",
		"chat.suggest.markets":    "സമീപ മാർക്കറ്റുകൾ",
		"chat.suggest.trends":     "വില പ്രവണതകൾ",
		"chat.suggest.weather":    "കാലാവസ്ഥാ പ്രവചനം",
		"chat.suggest.fertilizer": "വള നിർദേശം",
		"chat.suggest.pests":      "കീട നിയന്ത്രണം",
	},
}
