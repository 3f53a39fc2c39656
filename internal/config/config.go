package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Workers struct {
		PoolSize  int           `yaml:"pool_size" default:"4"`
		QueueSize int           `yaml:"queue_size" default:"50"`
		RateLimit int           `yaml:"rate_limit" default:"30"` // requests per minute per domain
		Timeout   time.Duration `yaml:"timeout" default:"180s"`
	} `yaml:"workers"`

	Advisor struct {
		Provider    string        `yaml:"provider" default:"claude"`
		APIKey      string        `yaml:"api_key"`
		Model       string        `yaml:"model" default:"claude-3-haiku-20240307"`
		MaxTokens   int           `yaml:"max_tokens" default:"2048"`
		Temperature float32       `yaml:"temperature" default:"0.1"`
		Timeout     time.Duration `yaml:"timeout" default:"30s"`
		MaxHTMLSize int           `yaml:"max_html_size" default:"15000"`
	} `yaml:"advisor"`

	Navigator struct {
		Engine         string        `yaml:"engine" default:"rod"` // "rod" or "firecrawl"
		UserAgent      string        `yaml:"user_agent"`
		RequestTimeout time.Duration `yaml:"request_timeout" default:"30s"`
		SettleDelay    time.Duration `yaml:"settle_delay" default:"2s"`
		HeadlessMode   bool          `yaml:"headless_mode" default:"true"`
		StealthMode    bool          `yaml:"stealth_mode" default:"true"`
		MaxInstances   int           `yaml:"max_instances" default:"4"`
	} `yaml:"navigator"`

	Firecrawl struct {
		APIKey     string        `yaml:"api_key"`
		APIURL     string        `yaml:"api_url" default:"https://api.firecrawl.dev"`
		Timeout    time.Duration `yaml:"timeout" default:"60s"`
		MaxRetries int           `yaml:"max_retries" default:"3"`
	} `yaml:"firecrawl"`

	// Heuristics carries the scorer weights and keyword-table extensions.
	// Zero values fall back to the defaults baked into the heuristics
	// package; the numbers are empirically chosen and exposed here so they
	// can be tuned without touching algorithm code.
	Heuristics struct {
		TextContainWeight  float64  `yaml:"text_contain_weight"`
		URLContainWeight   float64  `yaml:"url_contain_weight"`
		TextFuzzyWeight    float64  `yaml:"text_fuzzy_weight"`
		URLFuzzyWeight     float64  `yaml:"url_fuzzy_weight"`
		FuzzyThreshold     int      `yaml:"fuzzy_threshold"`
		OfficialBonus      float64  `yaml:"official_bonus"`
		PenaltyWeight      float64  `yaml:"penalty_weight"`
		ExtraCareersWords  []string `yaml:"extra_careers_keywords"`
		ExtraJobWords      []string `yaml:"extra_job_keywords"`
		ExtraRoleWords     []string `yaml:"extra_role_indicators"`
		MinListingScore    float64  `yaml:"min_listing_score"`
		MaxRankedCandidate int      `yaml:"max_ranked_candidates"`
	} `yaml:"heuristics"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
		CacheTTL time.Duration `yaml:"cache_ttl" default:"6h"`
		Enabled  bool          `yaml:"enabled" default:"false"`
	} `yaml:"redis"`

	Exporter struct {
		OutputDir  string `yaml:"output_dir" default:"artifacts"`
		DumpLinks  bool   `yaml:"dump_links" default:"true"`
		UploadMode string `yaml:"upload_mode" default:"local"` // "local" or "spaces"
	} `yaml:"exporter"`

	Spaces struct {
		BucketURL       string `yaml:"bucket_url"`
		CDNEndpoint     string `yaml:"cdn_endpoint"`
		AccessKeyID     string `yaml:"access_key_id"`
		AccessKeySecret string `yaml:"access_key_secret"`
		Region          string `yaml:"region" default:"blr1"`
		BucketName      string `yaml:"bucket_name" default:"jobscout-artifacts"`
	} `yaml:"spaces"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Workers.PoolSize = 4
	config.Workers.QueueSize = 50
	config.Workers.RateLimit = 30
	config.Workers.Timeout = 180 * time.Second

	config.Advisor.Provider = "claude"
	config.Advisor.Model = "claude-3-haiku-20240307"
	config.Advisor.MaxTokens = 2048
	config.Advisor.Temperature = 0.1
	config.Advisor.Timeout = 30 * time.Second
	config.Advisor.MaxHTMLSize = 15000

	config.Navigator.Engine = "rod"
	config.Navigator.RequestTimeout = 30 * time.Second
	config.Navigator.SettleDelay = 2 * time.Second
	config.Navigator.HeadlessMode = true
	config.Navigator.StealthMode = true
	config.Navigator.MaxInstances = 4
	config.Navigator.UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	config.Firecrawl.APIURL = "https://api.firecrawl.dev"
	config.Firecrawl.Timeout = 60 * time.Second
	config.Firecrawl.MaxRetries = 3

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second
	config.Redis.CacheTTL = 6 * time.Hour

	config.Exporter.OutputDir = "artifacts"
	config.Exporter.DumpLinks = true
	config.Exporter.UploadMode = "local"

	config.Spaces.Region = "blr1"
	config.Spaces.BucketName = "jobscout-artifacts"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("ADVISOR_API_KEY"); apiKey != "" {
		c.Advisor.APIKey = apiKey
	}

	// Legacy env name for the same credential
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" && c.Advisor.APIKey == "" {
		c.Advisor.APIKey = apiKey
	}

	if provider := os.Getenv("ADVISOR_PROVIDER"); provider != "" {
		c.Advisor.Provider = provider
	}

	if model := os.Getenv("ADVISOR_MODEL"); model != "" {
		c.Advisor.Model = model
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if engine := os.Getenv("NAVIGATOR_ENGINE"); engine != "" {
		c.Navigator.Engine = engine
	}

	if headless := os.Getenv("NAVIGATOR_HEADLESS"); headless != "" {
		c.Navigator.HeadlessMode = headless == "true" || headless == "1"
	}

	if firecrawlAPIKey := os.Getenv("FIRECRAWL_API_KEY"); firecrawlAPIKey != "" {
		c.Firecrawl.APIKey = firecrawlAPIKey
	}

	if firecrawlAPIURL := os.Getenv("FIRECRAWL_API_URL"); firecrawlAPIURL != "" {
		c.Firecrawl.APIURL = firecrawlAPIURL
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
		c.Redis.Enabled = true
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if cacheTTL := os.Getenv("REDIS_CACHE_TTL"); cacheTTL != "" {
		if ttl, err := time.ParseDuration(cacheTTL); err == nil {
			c.Redis.CacheTTL = ttl
		}
	}

	if outputDir := os.Getenv("EXPORTER_OUTPUT_DIR"); outputDir != "" {
		c.Exporter.OutputDir = outputDir
	}

	if uploadMode := os.Getenv("EXPORTER_UPLOAD_MODE"); uploadMode != "" {
		c.Exporter.UploadMode = uploadMode
	}

	if accessKeyID := os.Getenv("BUCKET_ACCESS_KEY_ID"); accessKeyID != "" {
		c.Spaces.AccessKeyID = accessKeyID
	}

	if accessKeySecret := os.Getenv("BUCKET_ACCESS_KEY_SECRET"); accessKeySecret != "" {
		c.Spaces.AccessKeySecret = accessKeySecret
	}

	if bucketURL := os.Getenv("BUCKET_URL"); bucketURL != "" {
		c.Spaces.BucketURL = bucketURL
	}

	if region := os.Getenv("BUCKET_REGION"); region != "" {
		c.Spaces.Region = region
	}

	if bucketName := os.Getenv("BUCKET_NAME"); bucketName != "" {
		c.Spaces.BucketName = bucketName
	}

	if poolSize := os.Getenv("WORKER_POOL_SIZE"); poolSize != "" {
		if size, err := strconv.Atoi(poolSize); err == nil {
			c.Workers.PoolSize = size
		}
	}

	if timeout := os.Getenv("WORKER_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Workers.Timeout = d
		}
	}
}
