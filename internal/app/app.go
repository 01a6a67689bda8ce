package app

import (
	"sync"

	"go.uber.org/zap"

	"sakhi/internal/i18n"
)

// Application wires the session-scoped services behind the UI: the
// profile directory, the advisory feed, the knowledge base, and the
// active language. Conversations are created per chat surface via
// NewConversation.
type Application struct {
	Config    Config
	Logger    *zap.Logger
	Profiles  *Directory
	Advisory  *AdvisoryBoard
	Knowledge *KnowledgeBase

	langMu sync.RWMutex
	lang   i18n.Language
}

func NewApplication(cfg Config, logger *zap.Logger) *Application {
	if logger == nil {
		logger = zap.NewNop()
	}
	lang, ok := i18n.Parse(cfg.Language)
	if !ok {
		lang = i18n.English
	}
	return &Application{
		Config:    cfg,
		Logger:    logger,
		Profiles:  NewDirectory(nil, nil),
		Advisory:  NewAdvisoryBoard(),
		Knowledge: NewKnowledgeBase(),
		lang:      lang,
	}
}

// Language returns the active UI language.
func (a *Application) Language() i18n.Language {
	a.langMu.RLock()
	defer a.langMu.RUnlock()
	return a.lang
}

// SetLanguage switches the active UI language.
func (a *Application) SetLanguage(lang i18n.Language) {
	a.langMu.Lock()
	a.lang = lang
	a.langMu.Unlock()
	a.Logger.Info("language changed", zap.String("language", string(lang)))
}

// ToggleLanguage cycles to the next supported language and returns it.
func (a *Application) ToggleLanguage() i18n.Language {
	langs := i18n.Languages()
	a.langMu.Lock()
	for i, l := range langs {
		if l == a.lang {
			a.lang = langs[(i+1)%len(langs)]
			break
		}
	}
	lang := a.lang
	a.langMu.Unlock()
	return lang
}

// T translates key for the active language.
func (a *Application) T(key string) string {
	return i18n.T(a.Language(), key)
}

// NewConversation builds a chat surface bound to this application's
// language, profile directory, and configured reply delay. Each surface
// owns an independent transcript; callers must Close it on teardown.
func (a *Application) NewConversation() *Conversation {
	return NewConversation(ConversationOptions{
		Delay:    a.Config.ReplyDelay(),
		Language: a.Language,
		Profiles: a.Profiles,
		Logger:   a.Logger,
		Greeting: a.Config.Greeting,
	})
}
