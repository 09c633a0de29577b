package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	defaultBaseURL          = "https://openlibrary.org"
	defaultCoverBaseURL     = "https://covers.openlibrary.org"
	defaultTimeout          = 10 * time.Second
	defaultUserAgent        = "bookexplorer/1.0 (+https://github.com/lepinkainen/bookexplorer)"
	defaultServerAddr       = ":8080"
	defaultDescriptionLimit = 500
)

// Global configuration variables
var (
	// BaseURL is the root of the OpenLibrary API
	BaseURL string
	// CoverBaseURL is the root of the OpenLibrary cover image host
	CoverBaseURL string
	// Timeout bounds every single upstream request
	Timeout time.Duration
	// UserAgent is sent with every upstream request
	UserAgent string
	// ServerAddr is the listen address for the HTTP API
	ServerAddr string
	// DescriptionLimit is the number of description characters shown in detail views
	DescriptionLimit int
)

// SetDefaults registers default values with viper.
func SetDefaults() {
	viper.SetDefault("openlibrary.baseurl", defaultBaseURL)
	viper.SetDefault("openlibrary.coverbaseurl", defaultCoverBaseURL)
	viper.SetDefault("openlibrary.timeout", defaultTimeout.String())
	viper.SetDefault("openlibrary.useragent", defaultUserAgent)
	viper.SetDefault("server.addr", defaultServerAddr)
	viper.SetDefault("display.descriptionlimit", defaultDescriptionLimit)
}

// InitConfig initializes the global configuration
func InitConfig() {
	SetDefaults()

	BaseURL = viper.GetString("openlibrary.baseurl")
	CoverBaseURL = viper.GetString("openlibrary.coverbaseurl")
	UserAgent = viper.GetString("openlibrary.useragent")
	ServerAddr = viper.GetString("server.addr")
	DescriptionLimit = viper.GetInt("display.descriptionlimit")

	Timeout = viper.GetDuration("openlibrary.timeout")
	if Timeout <= 0 {
		Timeout = defaultTimeout
	}
	if DescriptionLimit <= 0 {
		DescriptionLimit = defaultDescriptionLimit
	}
}

// SetServerAddr overrides the HTTP listen address
func SetServerAddr(addr string) {
	if addr != "" {
		ServerAddr = addr
	}
}

// SetBaseURL overrides the OpenLibrary API root
func SetBaseURL(url string) {
	if url != "" {
		BaseURL = url
	}
}
