package utils

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID 生成 24 位十六进制 ID（与文档库的 ObjectID 同构，SQL 侧也用它做主键）
func NewID() string {
	return primitive.NewObjectID().Hex()
}
