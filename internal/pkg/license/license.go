package license

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate 生成 XXXX-XXXX-XXXX-XXXX 格式的License Key。
// 16个字符从36个大写字母和数字中均匀随机抽取，
// 生成器本身不做唯一性检查，重复由数据库唯一约束拒绝。
func Generate() string {
	raw := randomString(16)

	var b strings.Builder
	for i := 0; i < 16; i += 4 {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(raw[i : i+4])
	}
	return b.String()
}

func randomString(length int) string {
	max := big.NewInt(int64(len(charset)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand 读取失败意味着系统熵源不可用
			panic(err)
		}
		b[i] = charset[n.Int64()]
	}
	return string(b)
}
