package workouts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	exerciseTypesCacheSize   = 4 * 1024 * 1024 // 4MB
	exerciseTypeCacheExpire  = 60 * 60         // seconds
	exerciseTypeCacheKeyBase = "exercise_type::"
)

type exerciseTypesSource interface {
	ExerciseType(ctx context.Context, id string) (*ExerciseType, error)
}

// ExerciseTypesCache keeps exercise catalog entries in memory. The catalog changes rarely,
// while names are needed for every PR and every session read.
type ExerciseTypesCache struct {
	cache  *freecache.Cache
	source exerciseTypesSource
}

func NewExerciseTypesCache(source exerciseTypesSource) *ExerciseTypesCache {
	return &ExerciseTypesCache{
		cache:  freecache.NewCache(exerciseTypesCacheSize),
		source: source,
	}
}

func (c *ExerciseTypesCache) Get(ctx context.Context, id string) (*ExerciseType, error) {
	cacheKey := []byte(exerciseTypeCacheKeyBase + id)
	if cached, err := c.cache.Get(cacheKey); err == nil {
		et := &ExerciseType{}
		if err := json.Unmarshal(cached, et); err == nil {
			return et, nil
		} else {
			log.Errorf("unmarshal cached exercise type [%s]: %s", id, err)
		}
	}

	et, err := c.source.ExerciseType(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("exercise type [%s]: %w", id, err)
	}

	etBytes, err := json.Marshal(et)
	if err != nil {
		log.Errorf("marshal exercise type [%s]: %s", id, err)
		return et, nil
	}
	if err := c.cache.Set(cacheKey, etBytes, exerciseTypeCacheExpire); err != nil {
		log.Errorf("set exercise type cache [%s]: %s", id, err)
	}

	return et, nil
}

// Name returns the display name of the exercise type, or the id itself when the type is unknown.
func (c *ExerciseTypesCache) Name(ctx context.Context, id string) string {
	et, err := c.Get(ctx, id)
	if err != nil {
		log.Warnf("exercise type name [%s]: %s", id, err)
		return id
	}
	return et.Name
}
