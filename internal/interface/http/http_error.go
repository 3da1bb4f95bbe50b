package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/ai-horoscope/pkg/errors"
)

const (
	codeInvalidRequest = "invalid_request"
	codeInternal       = "internal_error"

	invalidRequestPrefix = "Invalid request: "
	generationPrefix     = "Unable to generate horoscope: "
)

// HTTPError is the transport form of a failure: a status plus the {"detail","code"} body.
type HTTPError struct {
	Status int
	Code   string
	Detail string
	Err    error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Detail
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func badRequest(err error) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Code: codeInvalidRequest, Detail: invalidRequestPrefix + err.Error(), Err: err}
}

// toHTTPError maps service errors onto responses. invalid_input becomes 400 with the
// validation message; anything else is a 500 carrying the most specific cause.
func toHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		return &HTTPError{Status: http.StatusBadRequest, Code: apperrors.CodeInvalidInput, Detail: invalidRequestPrefix + apperrors.Detail(err), Err: err}
	}
	code := codeInternal
	if apperrors.IsCode(err, apperrors.CodeGenerationFailed) {
		code = apperrors.CodeGenerationFailed
	}
	return &HTTPError{Status: http.StatusInternalServerError, Code: code, Detail: generationPrefix + apperrors.Detail(err), Err: err}
}

func abortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
