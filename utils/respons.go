package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondStoreError mengklasifikasikan error dari store lalu membalas
// dengan pesan yang ramah, bukan pesan mentah driver.
func RespondStoreError(c *gin.Context, err error) {
	kind, message := ClassifyStoreError(err)
	c.JSON(kind.HTTPStatus(), JSONResponse{
		Status:  false,
		Message: message,
		Data:    gin.H{"error_kind": string(kind)},
	})
}

// HTTPStatus memetakan ErrorKind ke status code respon.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case ErrKindNotFound:
		return http.StatusNotFound
	case ErrKindConflict:
		return http.StatusConflict
	case ErrKindValidation:
		return http.StatusBadRequest
	case ErrKindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
