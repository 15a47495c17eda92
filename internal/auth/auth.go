package auth

import (
	"context"
	"strings"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
)

// IsDevUser checks if the user is a team member based on their email.
// Dev endpoints require this in addition to the devtools config flag.
func IsDevUser(ctx context.Context) bool {
	tok := firebaseauth.TokenFromContext(ctx)
	if id, ok := tok.Firebase.Identities["email"]; ok {
		if idAny, ok := id.([]any); ok && len(idAny) > 0 {
			if email, ok := idAny[0].(string); ok {
				return strings.HasSuffix(email, "@protocolapp.io")
			}
		}
	}
	return false
}
