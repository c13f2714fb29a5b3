package cache

import (
	"encoding/json"
	"reflect"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/log"
	"github.com/x-xyz/chimera/base/metrics"
	"github.com/x-xyz/chimera/service/cache/provider"
)

type impl struct {
	ttl         time.Duration
	pfx         string
	cache       provider.Provider
	serialize   Serializer
	deserialize Deserializer

	// fills collapses concurrent misses of one key into a single getter call
	fills   singleflight.Group
	metrics metrics.Service
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}

	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}

	return &impl{
		ttl:         config.Ttl,
		pfx:         config.Pfx,
		cache:       config.Cache,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
		metrics:     metrics.New("cache"),
	}
}

// GetByFunc loads key into container, calling getter on a miss. getter must return a
// pointer to a value assignable to container's element.
func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		im.metrics.BumpSum("hit", 1, "pfx", im.pfx)
		return nil
	} else if err != ErrNotFound {
		return err
	}
	im.metrics.BumpSum("miss", 1, "pfx", im.pfx)

	val, err, shared := im.fills.Do(key, func() (interface{}, error) {
		val, err := getter()
		if err != nil {
			return nil, err
		}
		if err := im.Set(c, key, val); err != nil {
			// the value is still served, only the next lookup misses again
			c.WithField("err", err).WithField("key", key).Warn("Set failed")
		}
		return val, nil
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "shared": shared}).Error("GetByFunc getter failed")
		return err
	}

	reflect.ValueOf(container).Elem().Set(reflect.ValueOf(val).Elem())
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = Key(im.pfx, key)

	val, _, err := im.cache.Get(c, key)
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return err
	}
	if err := im.deserialize(val, container); err != nil {
		// a stale encoding is a miss, the entry is overwritten by the next fill
		c.WithField("err", err).WithField("key", key).Warn("deserialize failed")
		return ErrNotFound
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = Key(im.pfx, key)

	val, err := im.serialize(value)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("serialize failed")
		return err
	}
	if err := im.cache.Set(c, key, val, im.ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = Key(im.pfx, key)

	if err := im.cache.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Del failed")
		return err
	}
	return nil
}
