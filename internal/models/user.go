package models

// User is a registered guest or owner. Password holds an opaque hash.
type User struct {
	ID       int64  `json:"id" gorm:"column:id;primaryKey"`
	Name     string `json:"name" gorm:"column:name"`
	Email    string `json:"email" gorm:"column:email"`
	Password string `json:"-" gorm:"column:password"`
}

func (User) TableName() string {
	return "users"
}
