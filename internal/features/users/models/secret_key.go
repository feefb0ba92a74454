package users_models

type SecretKey struct {
	ID     uint   `gorm:"primaryKey"`
	Secret string `gorm:"column:secret"`
}

func (SecretKey) TableName() string {
	return "secret_keys"
}
