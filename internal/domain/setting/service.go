package setting

import "context"

// SettingService defines business logic for application settings
type SettingService interface {
	// GetSettings returns all settings with defaults applied. The Twilio
	// auth token is never exposed.
	GetSettings(ctx context.Context) (SettingsResponse, error)

	// UpdateSettings upserts the provided keys
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)

	// WorkingDays resolves the configured working days per month
	WorkingDays(ctx context.Context) (int, error)

	// SalaryCycle resolves the default payroll window boundaries
	SalaryCycle(ctx context.Context) (start int, end int, err error)
}
