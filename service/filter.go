package service

import (
	"strconv"
	"strings"

	"github.com/BerniceZTT/product_console/models"
	"github.com/BerniceZTT/product_console/utils"
)

// FilterProducts 按关键字过滤产品
// 空关键字原样返回 collection；否则名称、有效期、进价、售价、数量任一字段
// 包含关键字（忽略大小写）即命中，结果保持原有顺序
func FilterProducts(collection []models.Product, query string) []models.Product {
	if query == "" {
		return collection
	}

	keyword := strings.ToLower(query)
	result := make([]models.Product, 0, len(collection))
	for _, p := range collection {
		if matchesKeyword(p, keyword) {
			result = append(result, p)
		}
	}
	return result
}

// MatchesProduct 判断产品是否命中关键字
func MatchesProduct(p models.Product, query string) bool {
	return matchesKeyword(p, strings.ToLower(query))
}

func matchesKeyword(p models.Product, keyword string) bool {
	for _, field := range searchFields(p) {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

// searchFields 参与搜索的字段文本
func searchFields(p models.Product) [5]string {
	return [5]string{
		p.Name,
		p.ExpiryDate,
		utils.NumberText(p.PurchasePrice),
		utils.NumberText(p.SalePrice),
		strconv.Itoa(p.Quantity),
	}
}
