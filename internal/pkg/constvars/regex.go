package constvars

const (
	RegexMedoraPhone       = `^[\+]?[1-9][\d]{0,15}$`
	RegexPhoneSeparators   = `[\s\-\(\)]`
	RegexUsernameCharacter = `^[a-zA-Z0-9_.-]+$`
)
