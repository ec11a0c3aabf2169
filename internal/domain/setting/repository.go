package setting

import "context"

type SettingRepository interface {
	// Get returns the stored value, or ok=false when the key is unset.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Upsert replaces the single active value for a key.
	Upsert(ctx context.Context, key, value string) error

	List(ctx context.Context) ([]Setting, error)
}
