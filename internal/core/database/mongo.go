package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var ErrEmptyURI = errors.New("mongo: empty uri")

type Opts struct {
	URI               string
	Database          string
	MaxPoolSize       int
	ConnectTimeoutSec int
}

// NewMongo 建立连接并 ping 一次确认可达；返回的 cleanup 负责断开
func NewMongo(o Opts) (*mongo.Database, func(), error) {
	if o.URI == "" {
		return nil, nil, ErrEmptyURI
	}
	timeout := time.Duration(o.ConnectTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	clientOpts := options.Client().
		ApplyURI(o.URI).
		SetConnectTimeout(timeout)
	if o.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(uint64(o.MaxPoolSize))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}
	return client.Database(o.Database), cleanup, nil
}
