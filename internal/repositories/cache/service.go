package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"walletcore/internal/models"

	"github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Wallet account list caching. The account list of a wallet is the hot read
// of the transfer and deletion flows; every account write must invalidate it.
func (s *CacheService) CacheWalletAccounts(ctx context.Context, walletUUID string, accounts []models.WalletAccount) error {
	key := s.GenerateKey("wallet", "accounts", walletUUID)
	return s.Set(ctx, key, accounts)
}

func (s *CacheService) GetWalletAccounts(ctx context.Context, walletUUID string) ([]models.WalletAccount, bool, error) {
	key := s.GenerateKey("wallet", "accounts", walletUUID)
	var accounts []models.WalletAccount
	found, err := s.Get(ctx, key, &accounts)
	if err != nil || !found {
		return nil, false, err
	}
	return accounts, true, nil
}

func (s *CacheService) InvalidateWalletAccounts(ctx context.Context, walletUUID string) error {
	return s.Delete(ctx, s.GenerateKey("wallet", "accounts", walletUUID))
}

// FlushAll flushes all keys from the cache
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
