package types

// Language is the game language a record originated from.
type Language uint8

const (
	LanguageNone     Language = 0
	LanguageJapanese Language = 1
	LanguageEnglish  Language = 2
	LanguageFrench   Language = 3
	LanguageItalian  Language = 4
	LanguageGerman   Language = 5
	LanguageSpanish  Language = 7
	LanguageKorean   Language = 8
	LanguageChineseS Language = 9
	LanguageChineseT Language = 10
)

var languageNames = map[Language]string{
	LanguageJapanese: "Japanese",
	LanguageEnglish:  "English",
	LanguageFrench:   "French",
	LanguageItalian:  "Italian",
	LanguageGerman:   "German",
	LanguageSpanish:  "Spanish",
	LanguageKorean:   "Korean",
	LanguageChineseS: "ChineseS",
	LanguageChineseT: "ChineseT",
}

// LanguageFromCode maps a raw language byte. Slot 6 is unused by the games.
func LanguageFromCode(code uint8) Language {
	if _, ok := languageNames[Language(code)]; !ok {
		return LanguageNone
	}
	return Language(code)
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "None"
}
