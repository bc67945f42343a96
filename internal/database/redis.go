package database

import (
	"context"
	"crypto/md5"
	"time"

	"github.com/google/uuid"
	goRedis "github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// RedisRepository caches built export workbooks so an unchanged dataset is
// not re-rendered on every download.
type RedisRepository interface {
	Get(namespace, key string) ([]byte, bool)
	Set(namespace, key string, value []byte, expiry time.Duration)
}

type RedisSettings struct {
	DB         *int
	DBUser     *string
	DBPassword *string
	Host       *string
	Port       *string
}

type RedisConnection struct {
	client *goRedis.Client
	ctx    context.Context
}

const poolSize = 30

// Constructor to create an instance of redis repository with connection pool setup
func NewRedisConnection(settings RedisSettings) (*RedisConnection, error) {
	ctx := context.Background()
	redisClient := goRedis.NewClient(&goRedis.Options{
		Addr:     *settings.Host + ":" + *settings.Port,
		DB:       *settings.DB,
		Username: *settings.DBUser,
		Password: *settings.DBPassword,
		PoolSize: poolSize,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	log.Infof("Connected to Redis - %s", redisClient)
	return &RedisConnection{client: redisClient, ctx: ctx}, nil
}

// GenerateUUIDFromString derives a stable cache key from a namespace and a
// free-form key, keeping raw dataset fingerprints out of the keyspace.
func GenerateUUIDFromString(namespace, key string) string {
	hash := md5.Sum([]byte(namespace))
	namespaceUUID := uuid.Must(uuid.FromBytes(hash[:]))
	return uuid.NewMD5(namespaceUUID, []byte(key)).String()
}

func (r *RedisConnection) Set(namespace, key string, value []byte, expiry time.Duration) {
	hashKey := GenerateUUIDFromString(namespace, key)
	if err := r.client.Set(r.ctx, hashKey, value, expiry).Err(); err != nil {
		log.Errorf("Error caching %s: %v", hashKey, err)
		return
	}
	log.Infof("Background Task: Successfully cached %s for %s", hashKey, namespace)
}

func (r *RedisConnection) Get(namespace, key string) ([]byte, bool) {
	hashKey := GenerateUUIDFromString(namespace, key)
	storedValue, err := r.client.Get(r.ctx, hashKey).Bytes()
	if err == goRedis.Nil {
		log.Infof("Background Task: %s with key: %s does not exist", namespace, hashKey)
		return nil, false
	} else if err != nil {
		log.Errorf("error getting value %v", err.Error())
		return nil, false
	}
	return storedValue, true
}
