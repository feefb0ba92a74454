package users_enums

type Language string

const (
	LanguageUzbek    Language = "uz"
	LanguageJapanese Language = "ja"
	LanguageEnglish  Language = "en"
)

// IsValid validates the Language
func (l Language) IsValid() bool {
	switch l {
	case LanguageUzbek, LanguageJapanese, LanguageEnglish:
		return true
	default:
		return false
	}
}
