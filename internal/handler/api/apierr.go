package api

import (
	"net/http"

	"thejulge/internal/handler/httperr"
	"thejulge/internal/infra"

	"github.com/gin-gonic/gin"
)

const connectivityMessage = "서버에 연결할 수 없습니다. 잠시 후 다시 시도해주세요."

// abortGatewayError maps a remote API failure onto this facade's response.
// Rejections keep the remote's own message verbatim; connectivity failures
// get a generic retry prompt instead of leaking transport details.
func abortGatewayError(c *gin.Context, err error, detail any) {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, infra.RemoteMessage(err), detail)
	case infra.IsKind(err, infra.KindRejected):
		httperr.AbortWithError(c, http.StatusConflict, err, infra.RemoteMessage(err), detail)
	case infra.IsKind(err, infra.KindUnreachable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, connectivityMessage, detail)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error", detail)
	}
}
