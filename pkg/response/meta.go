package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	contextMetaKey  = "response_meta"
	contextStartKey = "response_meta_start"
)

// WithMeta initialises per-request response metadata. Handlers add
// markers through SetCacheHit and the demo-mode meta; JSON folds them
// into the envelope together with the processing time when the body is
// written.
func WithMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextStartKey, time.Now())
		c.Next()
	}
}

// SetCacheHit records whether the response payload was served from the
// read-through cache.
func SetCacheHit(c *gin.Context, hit bool) {
	setMetaValue(c, "cache_hit", hit)
}

func setMetaValue(c *gin.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	if stored, exists := c.Get(contextMetaKey); exists {
		if meta, ok := stored.(map[string]interface{}); ok {
			meta[key] = value
			return
		}
	}
	c.Set(contextMetaKey, map[string]interface{}{key: value})
}

// contextMeta assembles the markers recorded on the request plus the
// processing time when WithMeta is active. Returns nil when there is
// nothing to report so the meta field stays omitted.
func contextMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	var out map[string]interface{}
	if stored, exists := c.Get(contextMetaKey); exists {
		if meta, ok := stored.(map[string]interface{}); ok && len(meta) > 0 {
			out = make(map[string]interface{}, len(meta)+1)
			for k, v := range meta {
				out[k] = v
			}
		}
	}
	if stored, exists := c.Get(contextStartKey); exists {
		if start, ok := stored.(time.Time); ok {
			if out == nil {
				out = make(map[string]interface{}, 1)
			}
			out["processing_time_ms"] = time.Since(start).Milliseconds()
		}
	}
	return out
}
