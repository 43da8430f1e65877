// File: internal/service/password.go
package service

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// hashCost 讀取環境變數 BCRYPT_COST 作為哈希成本，未設定或超出範圍時用預設值
func hashCost() int {
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if c, err := strconv.Atoi(v); err == nil && c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
			return c
		}
	}
	return bcrypt.DefaultCost
}

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost())
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
