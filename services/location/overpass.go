package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"eventhub/metrics"
	"eventhub/models"
	"eventhub/services/cache"
	"eventhub/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultMinInterval = 1500 * time.Millisecond
	DefaultTimeout     = 12 * time.Second
	DefaultCacheTTL    = 30 * time.Minute

	userAgent = "eventhub-locations/1.0"
)

// DefaultMirrors are the public Overpass endpoints rotated through on failure.
var DefaultMirrors = []string{
	"https://overpass-api.de/api/interpreter",
	"https://overpass.kumi.systems/api/interpreter",
	"https://maps.mail.ru/osm/tools/overpass/api/interpreter",
}

var errEmptyResponse = errors.New("overpass returned no named elements")

// overpassResponse is the subset of the Overpass JSON output we read.
type overpassResponse struct {
	Elements []struct {
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// OverpassClient looks up Indian cities and their areas on OpenStreetMap.
// Outbound calls are throttled and cached; failures resolve to static data.
type OverpassClient struct {
	httpClient *http.Client
	mirrors    []string
	timeout    time.Duration
	ttl        time.Duration
	limiter    *rate.Limiter
	cache      cache.Store
	logger     *zap.Logger

	mu        sync.Mutex
	mirrorIdx int
}

// Option configures an OverpassClient.
type Option func(*OverpassClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *OverpassClient) { c.httpClient = hc }
}

func WithMirrors(urls ...string) Option {
	return func(c *OverpassClient) {
		if len(urls) > 0 {
			c.mirrors = urls
		}
	}
}

// WithMinInterval sets the minimum gap between two outbound requests.
func WithMinInterval(d time.Duration) Option {
	return func(c *OverpassClient) {
		if d > 0 {
			c.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *OverpassClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithCache(store cache.Store) Option {
	return func(c *OverpassClient) {
		if store != nil {
			c.cache = store
		}
	}
}

func WithCacheTTL(d time.Duration) Option {
	return func(c *OverpassClient) {
		if d > 0 {
			c.ttl = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *OverpassClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewOverpassClient builds a client with its own throttle, cache and mirror rotation.
func NewOverpassClient(opts ...Option) *OverpassClient {
	c := &OverpassClient{
		httpClient: &http.Client{},
		mirrors:    DefaultMirrors,
		timeout:    DefaultTimeout,
		ttl:        DefaultCacheTTL,
		limiter:    rate.NewLimiter(rate.Every(DefaultMinInterval), 1),
		cache:      cache.NewMemoryStore(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCities returns the cities of India. It never fails: on any error the static list is returned.
func (c *OverpassClient) FetchCities(ctx context.Context) []models.Place {
	query := `[out:json][timeout:25];area["ISO3166-1"="IN"][admin_level=2]->.india;` +
		`(node["place"="city"](area.india););out tags;`
	return c.lookup(ctx, "cities", citiesCacheKey(), query, FallbackCities)
}

// FetchAreas returns the suburbs and neighbourhoods of cityName, falling back to curated lists.
func (c *OverpassClient) FetchAreas(ctx context.Context, cityName string) []models.Place {
	canonical := NormalizeCity(cityName)
	if canonical == "" {
		return []models.Place{}
	}
	name := strings.ReplaceAll(utils.TitleCase(canonical), `"`, `\"`)
	query := fmt.Sprintf(`[out:json][timeout:25];area["name"="%s"]["boundary"="administrative"]->.city;`+
		`(node["place"~"^(suburb|neighbourhood|quarter)$"](area.city););out tags;`, name)
	return c.lookup(ctx, "areas", areasCacheKey(canonical), query, func() []models.Place {
		return FallbackAreas(canonical)
	})
}

// Prewarm loads the city list and the areas of every curated city into the cache.
func (c *OverpassClient) Prewarm(ctx context.Context) {
	c.FetchCities(ctx)
	for _, city := range CuratedCities() {
		if ctx.Err() != nil {
			return
		}
		c.FetchAreas(ctx, city)
	}
}

func (c *OverpassClient) lookup(ctx context.Context, kind, key, query string, fallback func() []models.Place) []models.Place {
	if places, ok := c.cached(ctx, key); ok {
		metrics.OverpassRequestsTotal.WithLabelValues(kind, "cache_hit").Inc()
		return places
	}

	if err := c.limiter.Wait(ctx); err != nil {
		c.logger.Warn("overpass: throttle wait aborted, serving fallback", zap.String("key", key), zap.Error(err))
		metrics.OverpassRequestsTotal.WithLabelValues(kind, "fallback").Inc()
		return fallback()
	}
	// A caller queued behind us may already have filled the entry.
	if places, ok := c.cached(ctx, key); ok {
		metrics.OverpassRequestsTotal.WithLabelValues(kind, "cache_hit").Inc()
		return places
	}

	places, err := c.fetch(ctx, query)
	if err != nil {
		mirror := c.rotateMirror()
		c.logger.Warn("overpass: request failed, serving fallback",
			zap.String("key", key), zap.String("nextMirror", mirror), zap.Error(err))
		metrics.OverpassRequestsTotal.WithLabelValues(kind, "fallback").Inc()
		return fallback()
	}

	if err := c.cache.Set(ctx, key, places, c.ttl); err != nil {
		c.logger.Warn("overpass: failed to cache result", zap.String("key", key), zap.Error(err))
	}
	metrics.OverpassRequestsTotal.WithLabelValues(kind, "success").Inc()
	return places
}

func (c *OverpassClient) cached(ctx context.Context, key string) ([]models.Place, bool) {
	var places []models.Place
	ok, err := c.cache.Get(ctx, key, &places)
	if err != nil {
		c.logger.Warn("overpass: cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return places, ok
}

func (c *OverpassClient) currentMirror() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mirrors[c.mirrorIdx%len(c.mirrors)]
}

// rotateMirror advances to the next mirror for the following call and returns it.
func (c *OverpassClient) rotateMirror() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mirrorIdx = (c.mirrorIdx + 1) % len(c.mirrors)
	return c.mirrors[c.mirrorIdx]
}

func (c *OverpassClient) fetch(ctx context.Context, query string) ([]models.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.currentMirror(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	var body overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	seen := make(map[string]struct{})
	var names []string
	for _, el := range body.Elements {
		name := el.Tags["name:en"]
		if name == "" {
			name = el.Tags["name"]
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := utils.Fold(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, errEmptyResponse
	}
	sort.Strings(names)
	return toPlaces(names), nil
}
