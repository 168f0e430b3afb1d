package router

import (
	"net/http"

	"github.com/fekuna/omnipos-sales-service/internal/server/rpcerror"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorBody struct {
	Error    string            `json:"error"`
	Reason   string            `json:"reason,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

var httpStatus = map[codes.Code]int{
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.FailedPrecondition: http.StatusConflict,
	codes.Unauthenticated:    http.StatusUnauthorized,
	codes.Unavailable:        http.StatusServiceUnavailable,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
}

// fail writes err with the same classification and message the gRPC API uses.
func (h *handler) fail(c *gin.Context, op string, err error) {
	rpcErr := rpcerror.Status(c.Request.Context(), h.logger, op, err)
	st := status.Convert(rpcErr)

	code, ok := httpStatus[st.Code()]
	if !ok {
		code = http.StatusInternalServerError
	}

	body := errorBody{Error: st.Message()}
	if info := rpcerror.ErrorInfo(rpcErr); info != nil {
		body.Reason = info.Reason
		body.Metadata = info.Metadata
	}
	c.JSON(code, body)
}
