package utils

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// NumberText 将数值转为最短的十进制文本，如 12.5、10
// 不使用科学计数法：1e21 输出为 1000000000000000000000
func NumberText(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPrice 格式化价格，如 R$ 1.234,50
func FormatPrice(v float64) string {
	sign := ""
	if v <= -0.005 {
		sign = "-"
		v = -v
	}
	return sign + "R$ " + humanize.FormatFloat("#.###,##", v)
}

// Truncate 截断字符串，超出部分以...结尾
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 3 || len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
