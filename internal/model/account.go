package model

// Account is an administrator login credential.
// 교인(Member)과 별개로 관리자 계정만 비밀번호를 가진다.
type Account struct {
	UUIDBase

	Email    string `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_account_email" json:"email"`
	Name     string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Password string `gorm:"column:password;type:varchar(60);not null" json:"-"` // bcrypt 해시

	BaseEntity
}

func (*Account) TableName() string {
	return "accounts"
}

// NewAccount creates an Account. password must already be hashed.
func NewAccount(name, email, hashedPassword string) *Account {
	return &Account{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
}
