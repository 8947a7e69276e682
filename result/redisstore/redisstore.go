/*
Package redisstore provides a result.Store backed by a redis DB: every
run's subgroup set is kept under a prefixed key, serialized with an
injected result.EncodeDecoder.
*/
package redisstore

import (
	"context"
	"fmt"

	"github.com/subgroups/dssd/result"
	"github.com/subgroups/dssd/subgroup"
	redis "gopkg.in/redis.v5"
)

type redisStore struct {
	rc     *redis.Client
	prefix string
	encdec result.EncodeDecoder
}

// New builds a result.Store backed by a redis DB. The given prefix is
// prepended to every run name to form the redis key the run's subgroup
// set is kept under.
func New(rc *redis.Client, prefix string, encdec result.EncodeDecoder) result.Store {
	return &redisStore{rc, prefix, encdec}
}

func (rs *redisStore) Save(ctx context.Context, name string, subgroups []subgroup.Description) error {
	data, err := rs.encdec.Encode(subgroups)
	if err != nil {
		return fmt.Errorf("saving run %q: encoding subgroups: %v", name, err)
	}
	_, err = rs.rc.Set(rs.keyFor(name), data, 0).Result()
	if err != nil {
		return fmt.Errorf("saving run %q in redis: %v", name, err)
	}
	return nil
}

func (rs *redisStore) Load(ctx context.Context, name string) ([]subgroup.Description, error) {
	data, err := rs.rc.Get(rs.keyFor(name)).Result()
	if err != nil {
		return nil, fmt.Errorf("retrieving run %q: %v", name, err)
	}
	subgroups, err := rs.encdec.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving run %q: decoding %q: %v", name, data, err)
	}
	return subgroups, nil
}

func (rs *redisStore) Delete(ctx context.Context, name string) error {
	_, err := rs.rc.Del(rs.keyFor(name)).Result()
	if err != nil {
		return fmt.Errorf("deleting run %q from redis: %v", name, err)
	}
	return nil
}

func (rs *redisStore) keyFor(name string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, name)
}
