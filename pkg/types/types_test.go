package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpeciesFromCode(t *testing.T) {
	tests := []struct {
		code uint16
		want Species
		name string
	}{
		{0, SpeciesNone, "None"},
		{92, 92, "Gastly"},
		{132, 132, "Ditto"},
		{1025, 1025, "Pecharunt"},
		{1026, SpeciesNone, "None"},
		{0xFFFF, SpeciesNone, "None"},
	}

	for _, tt := range tests {
		got := SpeciesFromCode(tt.code)
		assert.Equal(t, tt.want, got, "code %d", tt.code)
		assert.Equal(t, tt.name, got.String(), "code %d", tt.code)
	}

	assert.Equal(t, SpeciesCount+1, len(speciesNames))
	assert.Equal(t, "None", Species(5000).String())
}

func TestMoveFromCode(t *testing.T) {
	assert.Equal(t, "Hypnosis", MoveFromCode(95).String())
	assert.Equal(t, "Lick", MoveFromCode(122).String())
	assert.Equal(t, "Transform", MoveFromCode(144).String())
	assert.Equal(t, "Tera Blast", MoveFromCode(851).String())
	assert.Equal(t, "Malignant Chain", MoveFromCode(919).String())
	assert.Equal(t, MoveNone, MoveFromCode(920))
	assert.Equal(t, "None", MoveFromCode(0).String())
}

func TestAbilityFromCode(t *testing.T) {
	assert.Equal(t, "Levitate", AbilityFromCode(26).String())
	assert.Equal(t, "Imposter", AbilityFromCode(150).String())
	assert.Equal(t, "Poison Puppeteer", AbilityFromCode(310).String())
	assert.Equal(t, AbilityNone, AbilityFromCode(311))
}

func TestNatureFromCode(t *testing.T) {
	assert.Equal(t, "Hardy", NatureFromCode(0).String())
	assert.Equal(t, "Adamant", NatureFromCode(3).String())
	assert.Equal(t, "Bold", NatureFromCode(5).String())
	assert.Equal(t, "Quirky", NatureFromCode(24).String())
	assert.Equal(t, NatureNone, NatureFromCode(25))
	assert.Equal(t, "None", NatureNone.String())
}

func TestGenderFromCode(t *testing.T) {
	assert.Equal(t, GenderMale, GenderFromCode(0))
	assert.Equal(t, GenderFemale, GenderFromCode(1))
	assert.Equal(t, GenderGenderless, GenderFromCode(2))
	assert.Equal(t, GenderNone, GenderFromCode(3))
	assert.Equal(t, "Genderless", GenderGenderless.String())
}

func TestLanguageFromCode(t *testing.T) {
	tests := []struct {
		code uint8
		want Language
	}{
		{0, LanguageNone},
		{1, LanguageJapanese},
		{2, LanguageEnglish},
		{3, LanguageFrench},
		{6, LanguageNone},
		{7, LanguageSpanish},
		{10, LanguageChineseT},
		{11, LanguageNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LanguageFromCode(tt.code), "code %d", tt.code)
	}
	assert.Equal(t, "English", LanguageEnglish.String())
}

func TestAbilityNumberFromCode(t *testing.T) {
	assert.Equal(t, AbilityNumberFirst, AbilityNumberFromCode(1))
	assert.Equal(t, AbilityNumberSecond, AbilityNumberFromCode(2))
	assert.Equal(t, AbilityNumberNone, AbilityNumberFromCode(3))
	assert.Equal(t, AbilityNumberHidden, AbilityNumberFromCode(4))
	assert.Equal(t, AbilityNumberNone, AbilityNumberFromCode(0))
	assert.Equal(t, "Hidden", AbilityNumberHidden.String())
}

func TestShinyFromXor(t *testing.T) {
	tests := []struct {
		xor  uint16
		want Shiny
	}{
		{0, ShinySquare},
		{1, ShinyStar},
		{15, ShinyStar},
		{16, ShinyNone},
		{0xFFFF, ShinyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShinyFromXor(tt.xor), "xor %d", tt.xor)
	}
}

func TestHiddenPower(t *testing.T) {
	assert.Equal(t, uint8(0), Stats{}.HiddenPowerIndex())
	assert.Equal(t, uint8(0), Stats{2, 4, 6, 8, 10, 30}.HiddenPowerIndex())
	assert.Equal(t, uint8(15), Stats{31, 31, 31, 31, 31, 31}.HiddenPowerIndex())

	gastly := UnpackIVs(0x239d2a7a)
	assert.Equal(t, Stats{HP: 26, Atk: 19, Def: 10, Spe: 26, SpA: 25, SpD: 17}, gastly)
	assert.Equal(t, HiddenPowerElectric, HiddenPowerFromCode(gastly.HiddenPowerIndex()))

	assert.Equal(t, HiddenPowerNone, HiddenPowerFromCode(16))
	assert.Equal(t, "Dark", HiddenPowerDark.String())
}

func TestUnpackIVsIgnoresFlags(t *testing.T) {
	all := UnpackIVs(0xFFFFFFFF)
	assert.Equal(t, Stats{31, 31, 31, 31, 31, 31}, all)
	assert.Equal(t, 186, all.Total())
}

func TestElementTypeFromCode(t *testing.T) {
	assert.Equal(t, ElementFire, ElementTypeFromCode(9))
	assert.Equal(t, ElementFairy, ElementTypeFromCode(17))
	assert.Equal(t, ElementNone, ElementTypeFromCode(18))
	assert.Equal(t, ElementStellar, ElementTypeFromCode(99))
	assert.Equal(t, "Stellar", ElementStellar.String())
	assert.Equal(t, "None", ElementNone.String())
}

func TestBallFromCode(t *testing.T) {
	assert.Equal(t, "Poke", BallFromCode(4).String())
	assert.Equal(t, "Moon", BallFromCode(23).String())
	assert.Equal(t, "LAOrigin", BallFromCode(37).String())
	assert.Equal(t, BallNone, BallFromCode(38))
}
