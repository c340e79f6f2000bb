package providers

import (
	"unsafe"

	"github.com/coocood/freecache"

	"github.com/Projects-by-Harsh-and-Sid/NeuraNFT-Base/internal/structures"
)

// KeystoreProviderInterface is the key-value store behind issued API keys
// and other short-lived web-layer state. Ledger data never goes through
// it; every ledger read stays a fresh fetch.
type KeystoreProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Del(key string)
}

type KeystoreProvider struct {
	store *freecache.Cache
	ttl   int
}

func NewKeystoreProvider(conf *structures.Config, logger Logger) KeystoreProviderInterface {
	sizeMB := conf.Keys.StoreSize
	if sizeMB <= 0 {
		sizeMB = 1
	}
	ttl := int(conf.Keys.TTL.Seconds())

	logger.Infof(TypeApp, "Keystore initialized: %dMB, TTL=%ds", sizeMB, ttl)

	return &KeystoreProvider{
		store: freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:   ttl,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// Safe when the result is only read (not modified), which is the case
// for freecache, which copies keys internally.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (k *KeystoreProvider) Get(key string) ([]byte, bool) {
	val, err := k.store.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (k *KeystoreProvider) Set(key string, value []byte) {
	_ = k.store.Set(unsafeStringToBytes(key), value, k.ttl)
}

func (k *KeystoreProvider) Del(key string) {
	k.store.Del(unsafeStringToBytes(key))
}
