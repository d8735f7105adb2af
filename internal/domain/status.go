package domain

// FavoriteSync tracks the remote write behind the last favorite toggle
type FavoriteSync string

const (
	FavoriteSyncPending   FavoriteSync = "pending"
	FavoriteSyncCommitted FavoriteSync = "committed"
	FavoriteSyncFailed    FavoriteSync = "failed"
)

// Favorite header icons
const (
	IconFavorite       = "favorite"
	IconFavoriteBorder = "favorite-border"
)

// FavoriteIcon returns the header icon name for the flag
func FavoriteIcon(favorite bool) string {
	if favorite {
		return IconFavorite
	}
	return IconFavoriteBorder
}
