package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/BerniceZTT/product_console/middleware"
	"github.com/BerniceZTT/product_console/models"
	"github.com/BerniceZTT/product_console/utils"

	"github.com/go-resty/resty/v2"
)

// ProductsPath 产品接口路径
const ProductsPath = "/api/products"

// ProductGateway 远程产品服务
// 失败时返回 *utils.ApiError
type ProductGateway interface {
	List(ctx context.Context) ([]models.Product, error)
	Delete(ctx context.Context, id int) error
}

// ProductAPI 基于HTTP的远程产品服务客户端
type ProductAPI struct {
	httpClient *resty.Client
}

// NewProductAPI 创建产品服务客户端
// 不做自动重试，失败由用户重新触发
func NewProductAPI(baseURL string, timeout time.Duration, tokens middleware.TokenSource) *ProductAPI {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(middleware.Auth(tokens))
	client.OnBeforeRequest(middleware.Logger())
	client.OnAfterResponse(middleware.LogResponse())
	client.OnAfterResponse(middleware.ErrorHandler())
	client.OnError(middleware.LogFailure())

	return &ProductAPI{httpClient: client}
}

// List 获取全部产品
func (a *ProductAPI) List(ctx context.Context) ([]models.Product, error) {
	resp, err := a.httpClient.R().
		SetContext(ctx).
		Get(ProductsPath)
	if err != nil {
		return nil, utils.AsApiError(err)
	}

	products, err := decodeProductList(resp.Body())
	if err != nil {
		utils.Logger.Error().Err(err).Int("statusCode", resp.StatusCode()).Msg("解析产品列表失败")
		return nil, utils.NewApiError("无法解析产品列表: "+err.Error(), resp.StatusCode(), "INVALID_RESPONSE")
	}

	utils.Logger.Debug().Int("count", len(products)).Msg("获取产品列表成功")
	return products, nil
}

// Delete 删除产品
func (a *ProductAPI) Delete(ctx context.Context, id int) error {
	_, err := a.httpClient.R().
		SetContext(ctx).
		SetPathParam("id", strconv.Itoa(id)).
		Delete(ProductsPath + "/{id}")
	if err != nil {
		return utils.AsApiError(err)
	}
	return nil
}

// decodeProductList 解析产品列表，支持数组和 {"products": [...]} 两种格式
func decodeProductList(body []byte) ([]models.Product, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []models.Product{}, nil
	}

	switch body[0] {
	case '[':
		var products []models.Product
		if err := json.Unmarshal(body, &products); err != nil {
			return nil, err
		}
		return products, nil
	case '{':
		var envelope models.ProductListEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, err
		}
		if envelope.Products == nil {
			return []models.Product{}, nil
		}
		return envelope.Products, nil
	case 'n':
		if string(body) == "null" {
			return []models.Product{}, nil
		}
	}

	return nil, fmt.Errorf("unexpected body %q", utils.Truncate(string(body), 40))
}
