package radichu

import "time"

// Default endpoints and identification values for the radiko streaming API.
// The auth key is the well-known shared key embedded in the official web
// player; it authenticates the app, not the listener.
const (
	defaultAuth1Endpoint    = "https://radiko.jp/v2/api/auth1"
	defaultAuth2Endpoint    = "https://radiko.jp/v2/api/auth2"
	defaultTimefreeEndpoint = "https://radiko.jp/v2/api/ts/playlist.m3u8"
	defaultStreamBase       = "http://f-radiko.smartstream.ne.jp"
	defaultAuthKey          = "bcd151073c03b352e1ef2fd66c32209da9ca0afa"
	defaultAppName          = "pc_html5"
	defaultAppVersion       = "0.0.1"
	defaultUserID           = "dummy_user"
	defaultDevice           = "pc"
	defaultTimeoutSeconds   = 15
)

// Config holds the playlist collaborator's settings. It is decoded straight
// from the gateway configuration file's radichu section and passed to the
// client untouched; the gateway core never interprets these fields.
type Config struct {
	Auth1Endpoint    string `yaml:"auth1_endpoint"`
	Auth2Endpoint    string `yaml:"auth2_endpoint"`
	TimefreeEndpoint string `yaml:"timefree_endpoint"`
	StreamBase       string `yaml:"stream_base"`
	AuthKey          string `yaml:"auth_key"`
	AppName          string `yaml:"app_name"`
	AppVersion       string `yaml:"app_version"`
	UserID           string `yaml:"user_id"`
	Device           string `yaml:"device"`
	TimeoutSeconds   int    `yaml:"timeout_seconds"`
}

// withDefaults returns a copy of c with unset fields filled in.
func (c Config) withDefaults() Config {
	if c.Auth1Endpoint == "" {
		c.Auth1Endpoint = defaultAuth1Endpoint
	}
	if c.Auth2Endpoint == "" {
		c.Auth2Endpoint = defaultAuth2Endpoint
	}
	if c.TimefreeEndpoint == "" {
		c.TimefreeEndpoint = defaultTimefreeEndpoint
	}
	if c.StreamBase == "" {
		c.StreamBase = defaultStreamBase
	}
	if c.AuthKey == "" {
		c.AuthKey = defaultAuthKey
	}
	if c.AppName == "" {
		c.AppName = defaultAppName
	}
	if c.AppVersion == "" {
		c.AppVersion = defaultAppVersion
	}
	if c.UserID == "" {
		c.UserID = defaultUserID
	}
	if c.Device == "" {
		c.Device = defaultDevice
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
	return c
}

// timeout returns the request timeout as a duration.
func (c Config) timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
