package service

import (
	"testing"

	"github.com/GreenD94/ladingburger-sub002/internal/api/settings/dto"
)

func TestDefaultSettings(t *testing.T) {
	defaults := DefaultSettings()
	if defaults.MenuTheme != "classic" || defaults.AdminThemeMode != "light" || defaults.Language != "es" {
		t.Errorf("valores por defecto inesperados: %+v", defaults)
	}
}

func TestApplySettingsUpdatePreservesAbsentFields(t *testing.T) {
	current := DefaultSettings()
	current.MenuTheme = "moderno"

	updated := ApplySettingsUpdate(current, dto.SettingsUpdateInput{
		AdminThemeMode: "dark",
	})

	if updated.MenuTheme != "moderno" {
		t.Errorf("un campo ausente debe conservar su valor: %q", updated.MenuTheme)
	}
	if updated.AdminThemeMode != "dark" {
		t.Errorf("el campo enviado debe actualizarse: %q", updated.AdminThemeMode)
	}
	if updated.Language != "es" {
		t.Errorf("el idioma no debe cambiar: %q", updated.Language)
	}
}

func TestApplySettingsUpdateRoundTrip(t *testing.T) {
	current := DefaultSettings()

	step1 := ApplySettingsUpdate(current, dto.SettingsUpdateInput{MenuTheme: "noche"})
	step2 := ApplySettingsUpdate(step1, dto.SettingsUpdateInput{Language: "en"})

	if step2.MenuTheme != "noche" || step2.Language != "en" || step2.AdminThemeMode != "light" {
		t.Errorf("actualizaciones parciales encadenadas perdieron datos: %+v", step2)
	}
}

func TestApplySettingsUpdateEmptyInputIsNoop(t *testing.T) {
	current := DefaultSettings()
	current.MenuTheme = "moderno"

	if updated := ApplySettingsUpdate(current, dto.SettingsUpdateInput{}); updated != current {
		t.Errorf("una actualización vacía no debe cambiar nada: %+v", updated)
	}
}
