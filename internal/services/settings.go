package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/logging"
	"github.com/dmitrijs2005/cheftube/internal/repositories/repomanager"
	"golang.org/x/text/language"
)

// SupportedLanguages lists the interface languages, default first.
var SupportedLanguages = []language.Tag{language.English, language.Spanish, language.Italian}

var languageMatcher = language.NewMatcher(SupportedLanguages)

// SettingsService keeps device-wide settings in the preferences store.
type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewSettingsService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *SettingsService {
	return &SettingsService{
		db:          db,
		repomanager: m,
		log:         log.With("component", "settings_service"),
	}
}

// Language returns the saved interface language, English when nothing
// usable is saved.
func (s *SettingsService) Language(ctx context.Context) (language.Tag, error) {
	raw, err := s.repomanager.Preferences(s.db).Get(ctx, common.LanguagePreferenceKey)
	if err != nil {
		return language.English, err
	}
	if raw == nil {
		return language.English, nil
	}

	tag, err := MatchLanguage(string(raw))
	if err != nil {
		s.log.Warn(ctx, "saved language ignored", "value", string(raw), "error", err)
		return language.English, nil
	}
	return tag, nil
}

// SetLanguage stores the supported language closest to code and returns it.
func (s *SettingsService) SetLanguage(ctx context.Context, code string) (language.Tag, error) {
	tag, err := MatchLanguage(code)
	if err != nil {
		return language.English, err
	}

	if err := s.repomanager.Preferences(s.db).Set(ctx, common.LanguagePreferenceKey, []byte(tag.String())); err != nil {
		s.log.Error(ctx, "language update failed", "op", "set_language", "error", err)
		return language.English, err
	}

	s.log.Info(ctx, "language changed", "language", tag.String())
	return tag, nil
}

// MatchLanguage maps a BCP 47 code such as "es-MX" onto a supported
// language. Weak matches are rejected with common.ErrUnsupportedLanguage.
func MatchLanguage(code string) (language.Tag, error) {
	want, err := language.Parse(code)
	if err != nil {
		return language.English, fmt.Errorf("%w: %q", common.ErrUnsupportedLanguage, code)
	}

	_, idx, conf := languageMatcher.Match(want)
	if conf < language.High {
		return language.English, fmt.Errorf("%w: %q", common.ErrUnsupportedLanguage, code)
	}
	return SupportedLanguages[idx], nil
}
