// Package playlist defines the seam between the gateway and the playlist
// collaborator that obtains streaming manifests.
package playlist

import "context"

// Fetcher obtains a playlist manifest for a station and time range.
//
// ft and to are opaque timestamp strings taken verbatim from the request
// path; both are empty for live streams, and implementations must tolerate
// the missing range. The returned manifest is relayed to the client
// unmodified, and any error's message text becomes the client-visible
// response body, so implementations must keep messages free of internal
// detail.
type Fetcher interface {
	FetchPlaylist(ctx context.Context, stationID, ft, to string) (string, error)
}
