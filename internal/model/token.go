package model

// AccessToken 访问令牌，登录时只校验是否存在
type AccessToken struct {
	Token string `gorm:"column:token;primaryKey;size:255" json:"-"`
}

func (AccessToken) TableName() string {
	return "tokens"
}
