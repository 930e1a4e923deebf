package ports

// Logger registra eventos estruturados dos services e do transporte.
// args são pares chave/valor ("username", u.Username, "error", err).
// Falhas de envio de email são registradas em Warn e nunca propagadas.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With fixa campos para todas as linhas seguintes, como request_id
	With(args ...any) Logger
}
