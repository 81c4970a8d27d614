package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuth защищает административные маршруты HTTP Basic-аутентификацией.
// Пароль сверяется с bcrypt-хешем; при пустом хеше middleware пропускает все запросы.
func AdminAuth(realm, user, passwordHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if passwordHash == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, p, ok := r.BasicAuth()
			if !ok || !checkCredentials(u, p, user, passwordHash) {
				w.Header().Set("WWW-Authenticate", fmt.Sprintf(`Basic realm=%q`, realm))
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func checkCredentials(gotUser, gotPassword, wantUser, passwordHash string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(gotUser), []byte(wantUser)) == 1
	// Хеш проверяем всегда, чтобы время ответа не зависело от имени пользователя.
	passOK := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(gotPassword)) == nil
	return userOK && passOK
}
