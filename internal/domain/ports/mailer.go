package ports

import "context"

// Mailer entrega o código de confirmação fora de banda
type Mailer interface {
	SendConfirmationCode(ctx context.Context, email, code string) error
}
