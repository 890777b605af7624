package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// maxPasswordBytes はbcryptが扱えるパスワードの最大バイト数です。
const maxPasswordBytes = 72

// ErrMalformedBody はリクエストボディがJSONとして解釈できない場合のエラーです。
var ErrMalformedBody = errors.New("malformed request body")

var registerOnce sync.Once

// RegisterValidations はGinのバリデーターに独自タグを登録します。
// 複数回呼び出しても登録は一度だけ行われます。
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= maxPasswordBytes
		})
	})
}

// Normalizer はバリデーション前に値を整形するリクエストです。
type Normalizer interface {
	Normalize()
}

// Bind はJSONボディをデコードし、整形してからbindingタグで検証します。
// 戻り値のエラーは ErrMalformedBody か validator.ValidationErrors です。
func Bind(c *gin.Context, req Normalizer) error {
	body, err := c.GetRawData()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if err := json.Unmarshal(body, req); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	req.Normalize()
	return binding.Validator.ValidateStruct(req)
}

// ValidationMessages はバリデーションエラーをフィールドごとのメッセージに変換します。
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s should not be empty", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be an email", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "bcryptlen":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %d bytes", field, maxPasswordBytes))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return msgs
}
