package gaddag

import (
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// The dictionary cache lets every game in the process share one copy of
// a dictionary. Dictionaries are immutable, so only the map needs a lock.

type dictionaryCache struct {
	sync.Mutex
	objects map[string]*Dictionary
}

type loadFunc func(path string) (*Dictionary, error)

var globalDictionaryCache = &dictionaryCache{objects: make(map[string]*Dictionary)}

func (c *dictionaryCache) get(key string, load loadFunc) (*Dictionary, error) {
	c.Lock()
	defer c.Unlock()
	if d, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting dictionary from cache")
		return d, nil
	}
	log.Debug().Str("key", key).Msg("loading dictionary into cache")
	d, err := load(key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = d
	return d, nil
}

// GetDictionary returns the dictionary at path, loading it on first use.
func GetDictionary(path string) (*Dictionary, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}
	return globalDictionaryCache.get(key, LoadDictionaryFile)
}

// ClearCache drops every cached dictionary.
func ClearCache() {
	globalDictionaryCache.Lock()
	defer globalDictionaryCache.Unlock()
	globalDictionaryCache.objects = make(map[string]*Dictionary)
}
