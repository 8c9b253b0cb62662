package middleware

import (
	"context"
	"net/http"
	"strings"
)

// InspectorHeader identifica quem revisa as linhas de CV
const InspectorHeader = "X-Inspector"

type contextKeyInspector string

const inspectorKey contextKeyInspector = "inspector"

// Inspector copia o header X-Inspector para o contexto da requisição
func Inspector() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if inspector := strings.TrimSpace(r.Header.Get(InspectorHeader)); inspector != "" {
				r = r.WithContext(context.WithValue(r.Context(), inspectorKey, inspector))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// InspectorFromContext retorna o revisor da requisição ou vazio
func InspectorFromContext(ctx context.Context) string {
	inspector, _ := ctx.Value(inspectorKey).(string)
	return inspector
}
