package response

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"controle-estagiarios/config"
	"controle-estagiarios/internal/global/logger"
)

var (
	ErrInvalidRequest  = newError(400, "requisição inválida")
	ErrTokenInvalid    = newError(401, "token inválido ou expirado")
	ErrUnauthorized    = newError(401, "não autorizado")
	ErrInvalidPassword = newError(401, "senha incorreta")
	ErrForbidden       = newError(403, "acesso negado")
	ErrNotFound        = newError(404, "registro não encontrado")
	ErrAlreadyExists   = newError(409, "registro já existe")
	ErrTooManyRequests = newError(429, "muitas tentativas, aguarde")
	ErrDatabase        = newError(500, "erro de banco de dados")
	ErrInternal        = newError(500, "erro interno")
)

// ResponseBody is the JSON envelope of every endpoint.
type ResponseBody struct {
	Code int32       `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// Success writes a 200 envelope; data is optional.
func Success(c *gin.Context, data ...interface{}) {
	body := ResponseBody{Code: 200, Msg: "ok"}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail writes an error envelope. *Error values keep their code; anything
// else is reported as an internal error. The origin detail is stripped
// outside debug mode.
func Fail(c *gin.Context, err error) {
	e, ok := err.(*Error)
	if !ok {
		e = ErrInternal.WithOrigin(err)
	}
	body := ResponseBody{Code: e.Code, Msg: e.Message}
	if config.Get().Mode == config.ModeDebug && e.Origin != "" {
		body.Data = gin.H{"origin": e.Origin}
	}
	c.JSON(http.StatusOK, body)
}

// Recovery turns a panic into a 500 envelope; meant for use in a deferred
// call from the recovery middleware.
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.Get().Error("panic recovered",
			"panic", r,
			"path", c.Request.URL.Path,
			"stack", string(debug.Stack()),
		)
		c.AbortWithStatusJSON(http.StatusOK, ResponseBody{
			Code: ErrInternal.Code,
			Msg:  ErrInternal.Message,
		})
	}
}
