package ui

import (
	"testing"

	"github.com/ytget/setlist/internal/model"
)

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyNoSongs); got != "No Songs yet!" {
		t.Errorf("GetText(KeyNoSongs) = %q, expected %q", got, "No Songs yet!")
	}

	l.SetLanguage("ru")
	if got := l.GetCurrentLanguage(); got != "ru" {
		t.Errorf("GetCurrentLanguage() = %q, expected ru", got)
	}
	if got := l.GetText(KeyCopied); got != "Скопировано" {
		t.Errorf("GetText(KeyCopied) = %q, expected Скопировано", got)
	}

	l.SetLanguage("xx")
	if got := l.GetCurrentLanguage(); got != "ru" {
		t.Errorf("unknown language should be ignored, got %q", got)
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("GetText(missing) = %q, expected the key itself", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for code := range l.GetAvailableLanguages() {
		for key := range l.texts["en"] {
			if _, ok := l.texts[code][key]; !ok {
				t.Errorf("language %s is missing %s", code, key)
			}
		}
	}
}

func TestLocalization_ValidationText(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if got := l.ValidationText(model.MsgSongsRequired); got != "Selecione pelo menos 1 música" {
		t.Errorf("ValidationText(songs) = %q", got)
	}
	if got := l.ValidationText("something else"); got != "something else" {
		t.Errorf("unknown message should pass through, got %q", got)
	}
}
