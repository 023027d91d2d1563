package constvars

const (
	RegexEmailShape    = `\S+@\S+\.\S+`
	RegexBrazilianDate = `^\d{2}/\d{2}/\d{4}$`
)
