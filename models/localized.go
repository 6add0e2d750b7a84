package models

// Supported interface languages. Anything else falls back to English.
const (
	LangEn = "en"
	LangUz = "uz"
	LangRu = "ru"
)

// SupportedLanguage reports whether lang is one of the languages the
// platform serves content in.
func SupportedLanguage(lang string) bool {
	switch lang {
	case LangEn, LangUz, LangRu:
		return true
	}
	return false
}

// LocalizedText holds the per-language variants of a translatable column.
// It is embedded into models with a gorm column prefix, so a field declared as
//
//	Title   string        `gorm:"type:varchar(255);not null"`
//	TitleTr LocalizedText `gorm:"embedded;embeddedPrefix:title_"`
//
// maps to title, title_en, title_uz, title_ru.
type LocalizedText struct {
	En string `json:"en" gorm:"type:text"`
	Uz string `json:"uz" gorm:"type:text"`
	Ru string `json:"ru" gorm:"type:text"`
}

// Resolve returns the variant for lang, or base when the variant is empty or
// the language is not supported. It never fails: a missing translation is not
// an error.
func (t LocalizedText) Resolve(lang, base string) string {
	var v string
	switch lang {
	case LangUz:
		v = t.Uz
	case LangRu:
		v = t.Ru
	default:
		v = t.En
	}
	if v == "" {
		return base
	}
	return v
}
