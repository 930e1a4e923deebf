package mailer

// Translator resolve textos localizados dos emails
type Translator interface {
	T(lang, key string, params ...map[string]interface{}) string
	GetDefaultLanguage() string
}

// Message é um email pronto para entrega
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// confirmationMessage monta o email com o código de confirmação no idioma padrão
func confirmationMessage(tr Translator, from, to, code string) Message {
	lang := tr.GetDefaultLanguage()
	return Message{
		From:    from,
		To:      to,
		Subject: tr.T(lang, "mail.confirmation.subject"),
		Body:    tr.T(lang, "mail.confirmation.body", map[string]interface{}{"Code": code}),
	}
}
