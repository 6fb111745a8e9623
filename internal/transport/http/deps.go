package http

import (
	"github.com/dianotes-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/dianotes-api/internal/infrastructure/jwt"
	"github.com/dianotes-api/internal/infrastructure/smtp"
)

// Deps holds the process-wide infrastructure dependencies for the router:
// the two DynamoDB repositories, the mailer and the token provider. All are
// long-lived resources built once in main and shared across requests.
type Deps struct {
	UserRepo    *dynamo.UserRepo
	NoteRepo    *dynamo.NoteRepo
	Mailer      smtp.Mailer
	JWTProvider *jwtinfra.Provider
}
