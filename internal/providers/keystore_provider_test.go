package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

// local mock logger to avoid import cycle with testutil
type keystoreTestLogger struct{}

func (m *keystoreTestLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *keystoreTestLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *keystoreTestLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *keystoreTestLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *keystoreTestLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *keystoreTestLogger) Close()                                        {}

func keystoreConfig(sizeMB int, ttl time.Duration) *structures.Config {
	return &structures.Config{
		Keys: structures.KeysConfig{
			StoreSize: sizeMB,
			TTL:       ttl,
		},
	}
}

func TestKeystoreProvider_SetAndGet(t *testing.T) {
	logger := &keystoreTestLogger{}
	ks := NewKeystoreProvider(keystoreConfig(1, time.Hour), logger)

	ks.Set("key1", []byte("value1"))
	val, ok := ks.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, []byte("value1"), val)
}

func TestKeystoreProvider_Miss(t *testing.T) {
	logger := &keystoreTestLogger{}
	ks := NewKeystoreProvider(keystoreConfig(1, time.Hour), logger)

	val, ok := ks.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestKeystoreProvider_Del(t *testing.T) {
	logger := &keystoreTestLogger{}
	ks := NewKeystoreProvider(keystoreConfig(1, time.Hour), logger)

	ks.Set("key1", []byte("value1"))
	ks.Del("key1")
	_, ok := ks.Get("key1")
	assert.False(t, ok)
}

func TestKeystoreProvider_ZeroSizeDefaults(t *testing.T) {
	logger := &keystoreTestLogger{}
	ks := NewKeystoreProvider(keystoreConfig(0, time.Hour), logger)

	ks.Set("key1", []byte("value1"))
	_, ok := ks.Get("key1")
	assert.True(t, ok)
}

func TestUnsafeStringToBytes(t *testing.T) {
	assert.Nil(t, unsafeStringToBytes(""))
	assert.Equal(t, []byte("abc"), unsafeStringToBytes("abc"))
}
