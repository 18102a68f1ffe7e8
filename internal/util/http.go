package util

import (
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// GetBytes fetches url with retries and returns the response body. Used for
// pulling uploaded logo files from the Telegram file API.
func GetBytes(url string) ([]byte, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = 12 * time.Second
	client.Logger = nil
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("non-200 response: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
