package routes

import "strconv"

// 产品相关页面
const (
	ProductListPath = "/product-list"
	ProductFormPath = "/product-form"
)

// ProductForm 产品编辑页，id 为产品ID
func ProductForm(id int) string {
	return ProductFormPath + "/" + strconv.Itoa(id)
}
