package notesdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// APIPrefix is the path every API route is mounted under.
const APIPrefix = "/api/v1"

// SDKClient is a client for the Notes service. It holds the session cookie
// in its jar, so one client represents one signed-in user.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new client with an empty cookie jar.
func NewSDKClient(baseURL string) *SDKClient {
	// cookiejar.New only fails on a bad PublicSuffixList, and we pass none.
	jar, _ := cookiejar.New(nil)

	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}
