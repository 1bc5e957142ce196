package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Client-facing messages stay in the site's language; the real cause is
// only ever logged server-side.
const (
	MsgInvalidName    = "이름은 필수이며 100자를 넘을 수 없습니다."
	MsgInvalidEmail   = "유효한 이메일 주소를 입력해주세요."
	MsgInvalidMessage = "메시지는 필수이며 5000자를 넘을 수 없습니다."
	MsgInquiryMissing = "문의를 찾을 수 없습니다."
	MsgServerError    = "서버 오류가 발생했습니다."
	MsgBadRequest     = "잘못된 요청입니다."
	MsgTooManyReqs    = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
	MsgNotFound       = "페이지를 찾을 수 없습니다."
	MsgNotAllowed     = "허용되지 않은 메서드입니다."
)

// ResponseWithData is the success envelope every endpoint returns.
type ResponseWithData struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ResponseWithError is the failure envelope; Error carries a localized,
// client-safe message only.
type ResponseWithError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func Success(data any) ResponseWithData {
	return ResponseWithData{Success: true, Data: data}
}

func Failure(msg string) ResponseWithError {
	return ResponseWithError{Success: false, Error: msg}
}

func NoMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, Failure(MsgNotAllowed))
}

func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, Failure(MsgNotFound))
}
