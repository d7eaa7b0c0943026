package vars

import "time"

const (
	KB_SIZE = 1_024

	// API_BASE_URL is always https; the service also answers on plain http
	// for some legacy paths, but signed requests should never travel there.
	API_BASE_URL = "https://api.cloudinary.com/v1_1"

	REQUEST_TIMEOUT = 60 * time.Second

	MAX_ASSET_SIZE   = 100 * KB_SIZE * KB_SIZE
	SCAN_CONCURRENCY = 6
)
