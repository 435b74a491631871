package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

var messageFiles = []string{"en.yaml", "zh_tw.yaml"}

func InitI18NBundle() {
	if err := LoadI18NBundle(viper.GetString("i18n.dir")); err != nil {
		panic(err)
	}
}

// LoadI18NBundle loads the message files found in dir.
func LoadI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, f := range messageFiles {
		if _, err := b.LoadMessageFile(path.Join(dir, f)); err != nil {
			return err
		}
	}
	bundle = b
	return nil
}

// NewLocalizer accepts language tags or Accept-Language header values, the
// first match wins.
func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

// Localize returns the message of id, or id itself when it has no translation.
func Localize(l *i18n.Localizer, id string, data map[string]interface{}) string {
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
