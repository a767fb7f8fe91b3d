package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BerniceZTT/product_console/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SessionsCollection 会话集合名
const SessionsCollection = "sessions"

var client *mongo.Client

// retryDelay 重试间隔基数
var retryDelay = 100 * time.Millisecond

// InitMongoDB 初始化MongoDB连接
func InitMongoDB(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	// 设置连接超时
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// 创建客户端
	var err error
	clientOptions := options.Client().ApplyURI(uri)
	client, err = mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("连接MongoDB失败: %w", err)
	}

	// 检查连接
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping MongoDB失败: %w", err)
	}

	utils.Logger.Info().Str("database", dbName).Msg("已连接到MongoDB")
	return client.Database(dbName), nil
}

// CloseMongoDB 关闭MongoDB连接
func CloseMongoDB(ctx context.Context) {
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			utils.Logger.Error().Err(err).Msg("断开MongoDB连接失败")
			return
		}
		client = nil
		utils.Logger.Info().Msg("已断开MongoDB连接")
	}
}

// ExecuteDbOperation 执行数据库操作，对网络类错误重试
// ctx 取消后不再重试
func ExecuteDbOperation(ctx context.Context, operation func() error, retries int) error {
	if retries <= 0 {
		retries = 3
	}

	var lastErr error
	for i := 0; i < retries; i++ {
		err := operation()
		if err == nil || errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}

		lastErr = err
		utils.Logger.Error().Err(err).Msgf("数据库操作失败，重试 (%d/%d)", i+1, retries)

		// 如果是不可重试的错误，立即返回
		if !isRetryableError(err) {
			break
		}

		// 延迟后重试
		if i < retries-1 {
			select {
			case <-ctx.Done():
				return lastErr
			case <-time.After(retryDelay * time.Duration(i+1)):
			}
		}
	}

	return lastErr
}

// isRetryableError 判断错误是否可重试
func isRetryableError(err error) bool {
	// MongoDB可重试错误代码
	retryableCodes := map[int32]bool{
		6:     true, // HostUnreachable
		7:     true, // HostNotFound
		89:    true, // NetworkTimeout
		91:    true, // ShutdownInProgress
		189:   true, // PrimarySteppedDown
		10107: true, // NotMaster
		13436: true, // NotMasterNoSlaveOk
		11600: true, // InterruptedAtShutdown
		11602: true, // InterruptedDueToReplStateChange
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return retryableCodes[cmdErr.Code]
	}

	// 检查常见网络错误
	return isNetworkError(err)
}

// isNetworkError 检查是否是网络错误
func isNetworkError(err error) bool {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	networkErrors := []string{
		"connection refused",
		"connection reset",
		"connection closed",
		"no reachable servers",
		"server selection error",
	}

	for _, ne := range networkErrors {
		if strings.Contains(errMsg, ne) {
			return true
		}
	}

	return false
}

// sessionDocument 会话文档
type sessionDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoStore 基于MongoDB的会话存储
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore 创建MongoDB会话存储
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(SessionsCollection)}
}

// Get 读取
func (s *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc sessionDocument
	err := ExecuteDbOperation(ctx, func() error {
		return s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	}, 3)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("读取会话 %s 失败: %w", key, err)
	}
	return doc.Value, true, nil
}

// Set 写入（不存在时插入）
func (s *MongoStore) Set(ctx context.Context, key, value string) error {
	err := ExecuteDbOperation(ctx, func() error {
		_, err := s.coll.UpdateOne(ctx,
			bson.M{"_id": key},
			bson.M{"$set": bson.M{"value": value, "updatedAt": time.Now()}},
			options.Update().SetUpsert(true),
		)
		return err
	}, 3)
	if err != nil {
		return fmt.Errorf("写入会话 %s 失败: %w", key, err)
	}
	return nil
}

// Remove 删除
func (s *MongoStore) Remove(ctx context.Context, key string) error {
	err := ExecuteDbOperation(ctx, func() error {
		_, err := s.coll.DeleteOne(ctx, bson.M{"_id": key})
		return err
	}, 3)
	if err != nil {
		return fmt.Errorf("删除会话 %s 失败: %w", key, err)
	}
	return nil
}

// Take 使用 FindOneAndDelete 原子地读取并删除
// 不重试：响应丢失时文档可能已被删除，重试会返回不存在
func (s *MongoStore) Take(ctx context.Context, key string) (string, bool, error) {
	var doc sessionDocument
	err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("读取会话 %s 失败: %w", key, err)
	}
	return doc.Value, true, nil
}
