package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedTextResolve(t *testing.T) {
	text := LocalizedText{En: "Hello", Uz: "Salom", Ru: "Привет"}

	assert.Equal(t, "Hello", text.Resolve(LangEn, "base"))
	assert.Equal(t, "Salom", text.Resolve(LangUz, "base"))
	assert.Equal(t, "Привет", text.Resolve(LangRu, "base"))
}

func TestLocalizedTextResolveFallsBackToBase(t *testing.T) {
	partial := LocalizedText{En: "Hello"}

	assert.Equal(t, "base", partial.Resolve(LangUz, "base"), "empty variant falls back")
	assert.Equal(t, "Hello", partial.Resolve("fr", "base"), "unsupported language reads English")
	assert.Equal(t, "base", LocalizedText{}.Resolve("fr", "base"))
}
