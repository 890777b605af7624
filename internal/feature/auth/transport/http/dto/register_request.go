package dto

import "strings"

// RegisterReq は /users/register エンドポイントのリクエストボディを表します。
// name と email はトリム後に検証されます。パスワードはトリムしません。
type RegisterReq struct {
	Name     string `json:"name" binding:"required,min=4,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=100,bcryptlen"`
}

// Normalize は name と email 前後の空白を取り除きます。
func (r *RegisterReq) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}
