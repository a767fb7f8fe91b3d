package models

// Product 产品模型，字段名沿用远程产品服务的JSON格式
type Product struct {
	ID            int     `json:"idProduto"`
	Name          string  `json:"nome"`
	ExpiryDate    string  `json:"data_validade"` // 按字符串比较，不做日期解析
	PurchasePrice float64 `json:"valor_compra"`
	SalePrice     float64 `json:"valor_venda"`
	Quantity      int     `json:"quantidade"`
}

// ProductListEnvelope 产品列表的包装响应
type ProductListEnvelope struct {
	Products []Product `json:"products"`
}

// ErrorBody 远程服务的错误响应
type ErrorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
	Code   string `json:"code"`
}
