package http

import (
	"net/http"

	"github.com/tidylist/tidylist/pkg/httpx"
	"github.com/tidylist/tidylist/pkg/jwtx"
	"github.com/tidylist/tidylist/pkg/todosdk"
)

// JWKSHandler exposes the JSON Web Key Set for public key discovery, so
// other services can verify tokens without calling back into this one.
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, todosdk.JWKSResponse(keys.PublicJWKS()))
	}
}
