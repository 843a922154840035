package httperr

import (
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the body of every error reply: {"error":{"message":...,"code":...}}.
type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

type Body struct {
	Message string `json:"message"`
	// Code is set for domain rejections so clients can branch without parsing messages.
	Code string `json:"code,omitempty"`
}

func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, Response{Status: status, Error: Body{Message: msg}, Detail: detail}, err)
}

func AbortWithCode(c *gin.Context, status int, code string, err error, msg string) {
	abort(c, Response{Status: status, Error: Body{Message: msg, Code: code}}, err)
}

// the cause stays on the context so ErrorHandler and the request log can report it
func abort(c *gin.Context, resp Response, err error) {
	if err == nil {
		err = errs.New(resp.Error.Message)
	}
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
