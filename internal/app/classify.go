package app

import (
	"strings"

	"sakhi/internal/i18n"
)

// replyRule binds a keyword branch to its localized reply template and
// suggestion keys. Rules are evaluated top to bottom; first match wins.
type replyRule struct {
	name           string
	keywords       map[i18n.Language][]string
	replyKey       string
	suggestionKeys []string
}

var replyRules = []replyRule{
	{
		name: "weather",
		keywords: map[i18n.Language][]string{
			i18n.English:   {"weather"},
			i18n.Malayalam: {"കാലാവസ്ഥ"},
		},
		replyKey: "chat.reply.weather",
		suggestionKeys: []string{
			"chat.suggest.irrigation",
			"chat.suggest.protection",
			"chat.suggest.drainage",
		},
	},
	{
		name: "fertilizer",
		keywords: map[i18n.Language][]string{
			i18n.English:   {"fertilizer"},
			i18n.Malayalam: {"വളം", "വള"},
		},
		replyKey: "chat.reply.fertilizer",
		suggestionKeys: []string{
			"chat.suggest.organic",
			"chat.suggest.dosage",
			"chat.suggest.schedule",
		},
	},
	{
		name: "pest",
		keywords: map[i18n.Language][]string{
			i18n.English:   {"pest"},
			i18n.Malayalam: {"കീടം", "കീട"},
		},
		replyKey: "chat.reply.pest",
		suggestionKeys: []string{
			"chat.suggest.identify",
			"chat.suggest.neem",
			"chat.suggest.traps",
		},
	},
	{
		name: "market",
		keywords: map[i18n.Language][]string{
			i18n.English:   {"market"},
			i18n.Malayalam: {"വിപണി", "മാർക്കറ്റ്"},
		},
		replyKey: "chat.reply.market",
		suggestionKeys: []string{
			"chat.suggest.mandi",
			"chat.suggest.markets",
			"chat.suggest.trends",
		},
	},
}

// genericSuggestionKeys backs the fallback branch.
var genericSuggestionKeys = []string{
	"chat.suggest.weather",
	"chat.suggest.fertilizer",
	"chat.suggest.pests",
}

// matchRule returns the first rule whose keywords appear in input,
// case-insensitively. Keywords of both locales are matched regardless
// of the active language.
func matchRule(input string) *replyRule {
	lower := strings.ToLower(input)
	for i := range replyRules {
		r := &replyRules[i]
		for _, lang := range i18n.Languages() {
			for _, kw := range r.keywords[lang] {
				if strings.Contains(lower, strings.ToLower(kw)) {
					return r
				}
			}
		}
	}
	return nil
}

func suggestionTexts(lang i18n.Language, keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = i18n.T(lang, k)
	}
	return out
}
