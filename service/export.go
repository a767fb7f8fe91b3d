package service

import (
	"fmt"
	"io"

	"github.com/BerniceZTT/product_console/models"
	"github.com/BerniceZTT/product_console/utils"

	"github.com/xuri/excelize/v2"
)

// ProductExportSheet 导出工作表名
const ProductExportSheet = "Lista de Produtos"

// ProductExportHeader 导出表头
var ProductExportHeader = []string{
	"Id",
	"Nome",
	"Validade",
	"Quantidade",
	"Valor Compra",
	"Valor Venda",
}

// ExportProducts 将产品列表写为 Excel 文件
func ExportProducts(w io.Writer, products []models.Product) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			utils.Logger.Error().Err(err).Msg("关闭Excel文件失败")
		}
	}()

	// 默认工作表改名
	if err := f.SetSheetName("Sheet1", ProductExportSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	// 设置表头样式
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	// 写入表头
	if err := f.SetSheetRow(ProductExportSheet, "A1", &ProductExportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(ProductExportHeader))
	if err != nil {
		return fmt.Errorf("failed to convert column number: %w", err)
	}
	if err := f.SetCellStyle(ProductExportSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(ProductExportSheet, "B", "B", 30); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	// 写入数据，从第2行开始
	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		row := []interface{}{p.ID, p.Name, p.ExpiryDate, p.Quantity, p.PurchasePrice, p.SalePrice}
		if err := f.SetSheetRow(ProductExportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	utils.Logger.Info().Int("count", len(products)).Msg("产品导出完成")
	return nil
}
