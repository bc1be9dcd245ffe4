package ports

import "context"

// SettingRegistrationEnabled gates the self-service registration endpoint.
const SettingRegistrationEnabled = "registration.enabled"

// SettingStore reads process-wide runtime settings.
type SettingStore interface {
	Bool(ctx context.Context, key string) (bool, error)
}
