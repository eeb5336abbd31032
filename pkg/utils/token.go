package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewVerificationToken 128 bit 密码学强随机，hex 编码（32 字符）。
// crypto/rand 失败说明系统熵源坏了，直接 panic。
func NewVerificationToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("utils: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}
