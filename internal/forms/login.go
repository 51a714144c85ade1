package forms

type LoginForm struct {
	Username   string `form:"username" json:"username" binding:"required,notblank"`
	Password   string `form:"password" json:"password" binding:"required"`
	RememberMe string `form:"remember_me" json:"remember_me"`
	Next       string `form:"next" json:"next"`
}

// Remember reports whether the remember me box was ticked. Any non-empty value counts.
func (f *LoginForm) Remember() bool {
	return f.RememberMe != ""
}
