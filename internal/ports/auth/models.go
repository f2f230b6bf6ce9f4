package auth

// Claims representa la identidad ya autenticada que viaja en el contexto.
// Los servicios sólo reciben Username; UserID queda para logs/trazas.
type Claims struct {
	UserID   string
	Username string
	Role     string
}
