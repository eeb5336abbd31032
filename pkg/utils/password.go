package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt 加盐慢哈希；盐和 cost 编码在输出里，
// 校验时不需要任何旁路状态
func HashPassword(pw string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword 存储的哈希损坏也只当校验失败，不 panic
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
